package agreement

import "errors"

var (
	ErrDraftNotFound   = errors.New("draft not found")
	ErrDraftSubmitting = errors.New("draft submission already in progress")
	ErrUnknownField    = errors.New("unknown field")
	ErrDerivedField    = errors.New("derived summary fields cannot be set directly")
)

// ValidationError blocks a submission attempt. Message is user-facing; all
// entered data is retained.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
