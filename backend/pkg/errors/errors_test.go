package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_IsMatchesByReason(t *testing.T) {
	err := NewValidationError(ReasonSelfReference, "custom message")

	assert.True(t, errors.Is(err, ErrSelfReference))
	assert.False(t, errors.Is(err, ErrInvalidWord))
	assert.False(t, errors.Is(err, ErrInvalidSynonymList))
}

func TestValidationError_WrappedStillMatches(t *testing.T) {
	wrapped := fmt.Errorf("save failed: %w", ErrInvalidSynonymList)

	assert.True(t, errors.Is(wrapped, ErrInvalidSynonymList))

	v, ok := AsValidation(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ReasonInvalidSynonymList, v.Reason)
}

func TestIsErrorType(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		errType ErrorType
		want    bool
	}{
		{"validation sentinel", ErrInvalidWord, ErrorTypeValidation, true},
		{"wrapped validation", fmt.Errorf("x: %w", ErrSelfReference), ErrorTypeValidation, true},
		{"config", NewConfigValidationFailed("PORT", "not a number"), ErrorTypeConfig, true},
		{"seed is not validation", NewSeedLoadFailed("a.yaml", -1, errors.New("boom")), ErrorTypeValidation, false},
		{"seed wrapping validation", NewSeedLoadFailed("a.yaml", 2, ErrInvalidWord), ErrorTypeValidation, true},
		{"plain error", errors.New("plain"), ErrorTypeConfig, false},
		{"nil", nil, ErrorTypeConfig, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsErrorType(tt.err, tt.errType))
		})
	}
}

func TestSeedLoadFailed_Message(t *testing.T) {
	whole := NewSeedLoadFailed("seed.yaml", -1, errors.New("no such file"))
	assert.Equal(t, "[seed] failed to load seed file: seed.yaml: no such file", whole.Error())

	group := NewSeedLoadFailed("seed.yaml", 3, ErrInvalidWord)
	assert.Contains(t, group.Error(), "group 3")
	assert.True(t, errors.Is(group, ErrInvalidWord))
}
