package agreement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreLifecycle(t *testing.T) {
	s := NewSessionStore()
	d := s.Create(DraftParams{Business: "Acme"})

	view, err := s.Get(d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", view.ClientBusinessName)

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestSessionIDsAreUnique(t *testing.T) {
	// Two drafts opened back to back share an agreement number second but
	// never a session id.
	s := NewSessionStore()
	a := s.Create(DraftParams{})
	b := s.Create(DraftParams{})
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSubmitLocksOutEdits(t *testing.T) {
	s := NewSessionStore()
	d := s.Create(DraftParams{})

	_, err := s.BeginSubmit(d.ID)
	require.NoError(t, err)

	_, err = s.Update(d.ID, func(*Draft) error { return nil })
	assert.ErrorIs(t, err, ErrDraftSubmitting)

	_, err = s.BeginSubmit(d.ID)
	assert.ErrorIs(t, err, ErrDraftSubmitting)

	// A failed attempt returns the draft to the editing state.
	s.FinishSubmit(d.ID, false)
	_, err = s.Update(d.ID, func(*Draft) error { return nil })
	assert.NoError(t, err)

	// A successful one discards it.
	_, err = s.BeginSubmit(d.ID)
	require.NoError(t, err)
	s.FinishSubmit(d.ID, true)
	_, err = s.Get(d.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
