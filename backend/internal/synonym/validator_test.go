package synonym

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	apperrors "synonym-search/backend/pkg/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		synonyms []string
		want     error
	}{
		{"valid", "happy", []string{"joyful", "glad"}, nil},
		{"empty word", "", []string{"a"}, apperrors.ErrInvalidWord},
		{"whitespace word", "  \t", []string{"a"}, apperrors.ErrInvalidWord},
		{"nil synonyms", "happy", nil, apperrors.ErrInvalidSynonymList},
		{"empty synonyms", "happy", []string{}, apperrors.ErrInvalidSynonymList},
		{"blank synonym", "happy", []string{"joyful", " "}, apperrors.ErrInvalidSynonymList},
		{"self reference", "happy", []string{"happy"}, apperrors.ErrSelfReference},
		{"self reference other case", "Happy", []string{"joyful", "HAPPY"}, apperrors.ErrSelfReference},
		{"self reference padded", "happy", []string{" happy "}, apperrors.ErrSelfReference},
		{"duplicates are not rejected", "happy", []string{"joyful", "Joyful"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.word, tt.synonyms)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestValidate_BlankCheckedBeforeSelfReference(t *testing.T) {
	err := Validate("happy", []string{"happy", ""})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidSynonymList))
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, Canonical("happy"), Canonical("HAPPY"))
	assert.Equal(t, Canonical("happy"), Canonical("  Happy\n"))
	assert.NotEqual(t, Canonical("happy"), Canonical("hap py"))
	assert.True(t, SameWord("Ελλάδα", "ΕΛΛΆΔΑ"))
}

func TestValidate_ReturnsFreshErrors(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		synonyms []string
		sentinel error
	}{
		{"blank word", " ", []string{"a"}, apperrors.ErrInvalidWord},
		{"empty list", "happy", nil, apperrors.ErrInvalidSynonymList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := Validate(tt.word, tt.synonyms)
			second := Validate(tt.word, tt.synonyms)

			assert.True(t, errors.Is(first, tt.sentinel))
			assert.NotSame(t, tt.sentinel, first)
			assert.NotSame(t, first, second)
		})
	}
}
