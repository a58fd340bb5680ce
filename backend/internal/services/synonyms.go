package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"synonym-search/backend/internal/synonym"
	apperrors "synonym-search/backend/pkg/errors"
)

// SynonymsResult is the outcome of a synonym query
type SynonymsResult struct {
	Word       string   `json:"word"`
	Synonyms   []string `json:"synonyms"`
	Transitive bool     `json:"transitive"`
}

// SaveRequest links a word to a list of synonyms
type SaveRequest struct {
	Word     string
	Synonyms []string
}

// Store is the engine surface the service depends on
type Store interface {
	Link(word string, synonyms []string) error
	Lookup(word string) (*synonym.Group, error)
	ResolveTransitive(word string) (*synonym.Group, error)
	Stats() synonym.Stats
}

// SynonymService maps transport requests onto the synonym store
type SynonymService struct {
	store       Store
	logger      *zap.Logger
	maxSynonyms int
}

// NewSynonymService creates a service over store. maxSynonyms caps the size
// of a single save request; zero or less disables the cap.
func NewSynonymService(store Store, logger *zap.Logger, maxSynonyms int) *SynonymService {
	return &SynonymService{
		store:       store,
		logger:      logger,
		maxSynonyms: maxSynonyms,
	}
}

// GetSynonyms returns the synonyms of word, expanded through the whole
// connected group when transitive is set. An unknown word yields an empty
// list; mapping that to "not found" is up to the caller.
func (s *SynonymService) GetSynonyms(ctx context.Context, word string, transitive bool) (*SynonymsResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewContextCancelled("get synonyms", err)
	}

	var (
		group *synonym.Group
		err   error
	)
	if transitive {
		group, err = s.store.ResolveTransitive(word)
	} else {
		group, err = s.store.Lookup(word)
	}
	if err != nil {
		return nil, err
	}

	return &SynonymsResult{
		Word:       group.Word(),
		Synonyms:   group.Synonyms(),
		Transitive: transitive,
	}, nil
}

// SaveSynonyms validates and links the request. Validation failures are
// returned as *errors.ValidationError and leave the store untouched.
func (s *SynonymService) SaveSynonyms(ctx context.Context, req SaveRequest) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewContextCancelled("save synonyms", err)
	}

	if s.maxSynonyms > 0 && len(req.Synonyms) > s.maxSynonyms {
		return apperrors.NewValidationError(apperrors.ReasonInvalidSynonymList,
			fmt.Sprintf("synonyms list cannot have more than %d entries", s.maxSynonyms))
	}

	if err := s.store.Link(req.Word, req.Synonyms); err != nil {
		if v, ok := apperrors.AsValidation(err); ok {
			s.logger.Debug("Rejected synonym save",
				zap.String("word", req.Word),
				zap.String("reason", string(v.Reason)),
			)
		}
		return err
	}

	s.logger.Info("Saved synonyms",
		zap.String("word", req.Word),
		zap.Int("count", len(req.Synonyms)),
	)
	return nil
}

// Stats reports the size of the underlying store
func (s *SynonymService) Stats(ctx context.Context) (synonym.Stats, error) {
	if err := ctx.Err(); err != nil {
		return synonym.Stats{}, apperrors.NewContextCancelled("stats", err)
	}
	return s.store.Stats(), nil
}
