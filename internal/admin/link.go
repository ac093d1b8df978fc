package admin

import (
	"net/url"
	"strconv"

	"github.com/lmwlabs/api-agreements/internal/client"
)

// LinkOptions select what an agreement link pre-fills beyond the client
// identity. Tier defaults to growth and mode to quote, matching the send
// dialog's defaults.
type LinkOptions struct {
	Tier        string
	Mode        string
	Amount      string
	Description string
	ProjectURL  string
}

// AgreementLink builds the pre-fill URL for a client. It is the inverse of
// the draft pre-fill reader: same parameter names, same encoding.
func AgreementLink(baseURL string, c *client.Client, opts LinkOptions) string {
	if opts.Tier == "" {
		opts.Tier = "growth"
	}
	if opts.Mode == "" {
		opts.Mode = "quote"
	}

	params := url.Values{}
	params.Set("business", c.BusinessName)
	params.Set("contact", c.ContactName)
	params.Set("email", c.Email)
	params.Set("phone", c.Phone)
	params.Set("clientId", strconv.FormatUint(uint64(c.ID), 10))
	params.Set("tier", opts.Tier)
	params.Set("mode", opts.Mode)
	if opts.Amount != "" {
		params.Set("amount", opts.Amount)
	}
	if opts.Description != "" {
		params.Set("description", opts.Description)
	}
	if opts.ProjectURL != "" {
		params.Set("projectUrl", opts.ProjectURL)
	}
	return baseURL + "/agreement?" + params.Encode()
}
