// Package service implements the business rules of the translation store.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/translation-service/internal/domain/dto"
	"github.com/guttosm/translation-service/internal/domain/model"
	"github.com/guttosm/translation-service/internal/repository"
)

var (
	// ErrTranslationExists is returned when a create targets an existing triple.
	ErrTranslationExists = errors.New("translation already exists")
	// ErrTranslationNotFound is returned when an update, delete, or get
	// targets a missing triple.
	ErrTranslationNotFound = errors.New("translation not found")
)

// maxLengthCeiling is both the default and the upper bound for the
// per-record length constraint.
const maxLengthCeiling = 1024

// TranslationService defines the business operations on translation records.
type TranslationService interface {
	Create(ctx context.Context, req dto.CreateTranslationRequest) (*dto.TranslationResponse, error)
	Update(ctx context.Context, req dto.UpdateTranslationRequest) (*dto.TranslationResponse, error)
	Delete(ctx context.Context, category, locale, key string) error
	Get(ctx context.Context, category, locale, key string, useInitial bool) (*dto.TranslationResponse, error)
	ListByCategoryAndLocale(ctx context.Context, category, locale string, useInitial bool) (*dto.TranslationListResponse, error)
	ListByLocale(ctx context.Context, locale string, useInitial bool) (*dto.TranslationListResponse, error)
}

// TranslationServiceImpl implements TranslationService.
type TranslationServiceImpl struct {
	repo repository.TranslationRepositoryInterface
}

// NewTranslationService creates a new translation service.
func NewTranslationService(repo repository.TranslationRepositoryInterface) TranslationService {
	return &TranslationServiceImpl{repo: repo}
}

// Create stores a new translation record. The input value becomes both the
// current and the initial value, and maxLength is normalized to (0, 1024].
// The existence pre-check is an optimization; the store's unique constraint
// is the authoritative guard, so a lost race still maps to ErrTranslationExists.
func (s *TranslationServiceImpl) Create(ctx context.Context, req dto.CreateTranslationRequest) (*dto.TranslationResponse, error) {
	exists, err := s.repo.ExistsByTriple(ctx, req.Category, req.Locale, req.Key)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, tripleError(ErrTranslationExists, req.Category, req.Locale, req.Key)
	}

	now := time.Now()
	t := &model.Translation{
		Category:     req.Category,
		Locale:       req.Locale,
		Key:          req.Key,
		Value:        req.Value,
		InitialValue: req.Value,
		MaxLength:    clampMaxLength(req.MaxLength),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := s.repo.Save(ctx, t)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateTriple) {
			return nil, tripleError(ErrTranslationExists, req.Category, req.Locale, req.Key)
		}
		return nil, err
	}

	resp := mapToResponse(*saved, false)
	return &resp, nil
}

// Update replaces the current value of an existing record and refreshes
// updatedAt. Identity fields, initialValue, maxLength, and createdAt are
// never touched.
func (s *TranslationServiceImpl) Update(ctx context.Context, req dto.UpdateTranslationRequest) (*dto.TranslationResponse, error) {
	existing, err := s.repo.FindByTriple(ctx, req.Category, req.Locale, req.Key)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, tripleError(ErrTranslationNotFound, req.Category, req.Locale, req.Key)
	}

	updated := existing.WithValue(req.Value, time.Now())
	saved, err := s.repo.Save(ctx, &updated)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, tripleError(ErrTranslationNotFound, req.Category, req.Locale, req.Key)
		}
		return nil, err
	}

	resp := mapToResponse(*saved, false)
	return &resp, nil
}

// Delete removes the record identified by the triple.
func (s *TranslationServiceImpl) Delete(ctx context.Context, category, locale, key string) error {
	existing, err := s.repo.FindByTriple(ctx, category, locale, key)
	if err != nil {
		return err
	}
	if existing == nil {
		return tripleError(ErrTranslationNotFound, category, locale, key)
	}

	if err := s.repo.Delete(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return tripleError(ErrTranslationNotFound, category, locale, key)
		}
		return err
	}
	return nil
}

// Get returns the record identified by the triple. When useInitial is set,
// the response value field carries the creation-time value.
func (s *TranslationServiceImpl) Get(ctx context.Context, category, locale, key string, useInitial bool) (*dto.TranslationResponse, error) {
	t, err := s.repo.FindByTriple(ctx, category, locale, key)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, tripleError(ErrTranslationNotFound, category, locale, key)
	}

	resp := mapToResponse(*t, useInitial)
	return &resp, nil
}

// ListByCategoryAndLocale returns all records matching category and locale.
// An empty result is not an error.
func (s *TranslationServiceImpl) ListByCategoryAndLocale(ctx context.Context, category, locale string, useInitial bool) (*dto.TranslationListResponse, error) {
	translations, err := s.repo.FindByCategoryAndLocale(ctx, category, locale)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(translations, useInitial), nil
}

// ListByLocale returns all records for a locale. The store queries by locale
// directly; results are unordered either way.
func (s *TranslationServiceImpl) ListByLocale(ctx context.Context, locale string, useInitial bool) (*dto.TranslationListResponse, error) {
	translations, err := s.repo.FindByLocale(ctx, locale)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(translations, useInitial), nil
}

// clampMaxLength normalizes the requested length constraint: values outside
// (0, 1024) become 1024. This is deliberate normalization, not validation.
func clampMaxLength(v int) int {
	if v <= 0 || v >= maxLengthCeiling {
		return maxLengthCeiling
	}
	return v
}

func tripleError(sentinel error, category, locale, key string) error {
	return fmt.Errorf("%w for category=%q, locale=%q, key=%q", sentinel, category, locale, key)
}

func mapToResponse(t model.Translation, useInitial bool) dto.TranslationResponse {
	value := t.Value
	if useInitial {
		value = t.InitialValue
	}
	return dto.TranslationResponse{
		ID:             t.ID.Hex(),
		Category:       t.Category,
		Locale:         t.Locale,
		Key:            t.Key,
		Value:          value,
		InitialValue:   t.InitialValue,
		MaxLength:      t.MaxLength,
		CreatedAt:      t.CreatedAt.Format(dto.ISOLocalDateTime),
		UpdatedAt:      t.UpdatedAt.Format(dto.ISOLocalDateTime),
		IsCustomizable: true,
	}
}

func mapToListResponse(translations []model.Translation, useInitial bool) *dto.TranslationListResponse {
	responses := make([]dto.TranslationResponse, len(translations))
	for i, t := range translations {
		responses[i] = mapToResponse(t, useInitial)
	}
	return &dto.TranslationListResponse{
		Translations: responses,
		Count:        len(responses),
	}
}
