package auth

import "strings"

// AdminPolicy is the single authorization check for privileged access. Both
// the admin dashboard and the portal consult it; the allow-list lives in one
// place only.
type AdminPolicy struct {
	emails map[string]struct{}
}

// NewAdminPolicy builds the policy from a comma-separated email list.
// Matching is case-insensitive.
func NewAdminPolicy(list string) *AdminPolicy {
	p := &AdminPolicy{emails: make(map[string]struct{})}
	for _, e := range strings.Split(list, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			p.emails[e] = struct{}{}
		}
	}
	return p
}

// IsAdmin reports whether the email belongs to an administrator.
func (p *AdminPolicy) IsAdmin(email string) bool {
	_, ok := p.emails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
