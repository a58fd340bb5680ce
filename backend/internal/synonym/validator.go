package synonym

import (
	"fmt"

	apperrors "synonym-search/backend/pkg/errors"
)

// Validate checks a proposed (word, synonyms) pair before it is applied to a
// Store. It never normalizes or deduplicates; it only rejects.
//
// The returned error is a *errors.ValidationError whose reason matches one of
// ErrInvalidWord, ErrInvalidSynonymList or ErrSelfReference under errors.Is.
func Validate(word string, synonyms []string) error {
	if IsBlank(word) {
		return blankWordError()
	}

	if len(synonyms) == 0 {
		return apperrors.NewValidationError(apperrors.ReasonInvalidSynonymList,
			"synonyms list cannot be empty")
	}
	for i, s := range synonyms {
		if IsBlank(s) {
			return apperrors.NewValidationError(apperrors.ReasonInvalidSynonymList,
				fmt.Sprintf("synonym at position %d is empty or whitespace", i))
		}
	}

	key := Canonical(word)
	for _, s := range synonyms {
		if Canonical(s) == key {
			return apperrors.NewValidationError(apperrors.ReasonSelfReference,
				fmt.Sprintf("synonyms list cannot contain the word itself: %q", s))
		}
	}

	return nil
}

// blankWordError builds a fresh invalid-word error for each rejection
func blankWordError() error {
	return apperrors.NewValidationError(apperrors.ReasonInvalidWord, "word cannot be empty or whitespace")
}
