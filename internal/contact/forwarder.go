package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Forwarder relays a lead to the external form service.
type Forwarder interface {
	Forward(ctx context.Context, req Request) error
}

type formspreeForwarder struct {
	formID string
	client *http.Client
}

// NewFormspreeForwarder forwards leads to Formspree. Returns nil when no form
// id is configured; the caller treats a nil forwarder as "store only".
func NewFormspreeForwarder(formID string) Forwarder {
	if formID == "" {
		return nil
	}
	return &formspreeForwarder{
		formID: formID,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *formspreeForwarder) Forward(ctx context.Context, req Request) error {
	payload := map[string]string{
		"name":        req.Name,
		"email":       req.Email,
		"phone":       orDefault(req.Phone, "Not provided"),
		"budget":      orDefault(req.Budget, "Not specified"),
		"projectType": orDefault(req.ProjectType, "Not specified"),
		"message":     orDefault(req.Message, "No message provided"),
		"_subject":    "New Lead from LMW Labs: " + req.Name,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://formspree.io/f/"+f.formID, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("formspree returned status %d", resp.StatusCode)
	}
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
