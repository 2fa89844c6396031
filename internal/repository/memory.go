package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/translation-service/internal/domain/model"
)

type triple struct {
	category string
	locale   string
	key      string
}

// MemoryTranslationRepository is an in-memory translation store used when
// MongoDB is disabled and as a test double. The triple uniqueness invariant
// is enforced under the same lock that performs the insert, so concurrent
// creates of the same triple see exactly one winner.
type MemoryTranslationRepository struct {
	mu      sync.RWMutex
	records map[triple]model.Translation
}

// NewMemoryTranslationRepository creates an empty in-memory store.
func NewMemoryTranslationRepository() *MemoryTranslationRepository {
	return &MemoryTranslationRepository{records: make(map[triple]model.Translation)}
}

// FindByTriple returns the record for the given triple, or (nil, nil) when absent.
func (r *MemoryTranslationRepository) FindByTriple(_ context.Context, category, locale, key string) (*model.Translation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if t, ok := r.records[triple{category, locale, key}]; ok {
		out := t
		return &out, nil
	}
	return nil, nil
}

// ExistsByTriple reports whether a record exists for the given triple.
func (r *MemoryTranslationRepository) ExistsByTriple(_ context.Context, category, locale, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.records[triple{category, locale, key}]
	return ok, nil
}

// FindByCategoryAndLocale returns all records matching category and locale.
func (r *MemoryTranslationRepository) FindByCategoryAndLocale(_ context.Context, category, locale string) ([]model.Translation, error) {
	return r.filter(func(t model.Translation) bool {
		return t.Category == category && t.Locale == locale
	}), nil
}

// FindByCategory returns all records in a category.
func (r *MemoryTranslationRepository) FindByCategory(_ context.Context, category string) ([]model.Translation, error) {
	return r.filter(func(t model.Translation) bool { return t.Category == category }), nil
}

// FindByLocale returns all records for a locale.
func (r *MemoryTranslationRepository) FindByLocale(_ context.Context, locale string) ([]model.Translation, error) {
	return r.filter(func(t model.Translation) bool { return t.Locale == locale }), nil
}

// FindAll returns every translation record.
func (r *MemoryTranslationRepository) FindAll(_ context.Context) ([]model.Translation, error) {
	return r.filter(func(model.Translation) bool { return true }), nil
}

func (r *MemoryTranslationRepository) filter(keep func(model.Translation) bool) []model.Translation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Translation
	for _, t := range r.records {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Save inserts the record when its ID is unset and replaces it otherwise.
// Inserting an existing triple fails with ErrDuplicateTriple.
func (r *MemoryTranslationRepository) Save(_ context.Context, t *model.Translation) (*model.Translation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := triple{t.Category, t.Locale, t.Key}
	if t.ID.IsZero() {
		if _, exists := r.records[k]; exists {
			return nil, ErrDuplicateTriple
		}
		t.ID = primitive.NewObjectID()
		now := time.Now()
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		if t.UpdatedAt.IsZero() {
			t.UpdatedAt = now
		}
		r.records[k] = *t
		return t, nil
	}

	existing, ok := r.records[k]
	if !ok || existing.ID != t.ID {
		return nil, ErrRecordNotFound
	}
	r.records[k] = *t
	return t, nil
}

// Delete removes the record by triple and ID.
func (r *MemoryTranslationRepository) Delete(_ context.Context, t *model.Translation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := triple{t.Category, t.Locale, t.Key}
	existing, ok := r.records[k]
	if !ok || existing.ID != t.ID {
		return ErrRecordNotFound
	}
	delete(r.records, k)
	return nil
}
