package cv

import "errors"

// ErrNoModel is returned when the model is accessed before any completed run.
var ErrNoModel = errors.New("cv: no model trained yet")

// holder keeps exclusive ownership of the most recently trained model.
// The empty state means no run has completed yet.
type holder struct {
	model Model
	ok    bool
}

// set replaces the held model, discarding the previous one.
func (h *holder) set(m Model) {
	h.model = m
	h.ok = true
}

// get returns the held model or ErrNoModel for the empty state.
func (h *holder) get() (Model, error) {
	if !h.ok {
		return nil, ErrNoModel
	}
	return h.model, nil
}
