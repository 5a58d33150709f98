package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := InvalidTransition("ticket", "INTAKE", "READY")
	wrapped := fmt.Errorf("advance: %w", err)

	assert.True(t, errors.Is(wrapped, ErrInvalidTransition))
	assert.False(t, errors.Is(wrapped, ErrValidation))
	assert.Equal(t, KindInvalidTransition, KindOf(wrapped))
}

func TestError_Message(t *testing.T) {
	err := Conflict("invoice", "inv-1", errors.New("stale version"))
	assert.Equal(t, `invoice: CONFLICT: "inv-1" was modified concurrently: stale version`, err.Error())
	assert.Equal(t, "NOT_FOUND", ErrNotFound.Error())
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("boom")))
	assert.Equal(t, Kind(""), KindOf(nil))
}
