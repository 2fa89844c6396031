// Package repository provides the data access layer for the translation service.
package repository

import (
	"context"
	"errors"

	"github.com/guttosm/translation-service/internal/domain/model"
)

var (
	// ErrDuplicateTriple is returned when an insert violates the unique
	// (category, locale, key) constraint. The storage-level constraint is the
	// authoritative guard against concurrent creates of the same triple.
	ErrDuplicateTriple = errors.New("translation triple already exists")
	// ErrRecordNotFound is returned when a mutation targets a record that no
	// longer exists.
	ErrRecordNotFound = errors.New("translation record not found")
)

// TranslationRepositoryInterface defines persistence operations for
// translation records. Find methods return (nil, nil) or an empty slice when
// nothing matches; errors are reserved for storage failures.
type TranslationRepositoryInterface interface {
	FindByTriple(ctx context.Context, category, locale, key string) (*model.Translation, error)
	ExistsByTriple(ctx context.Context, category, locale, key string) (bool, error)
	FindByCategoryAndLocale(ctx context.Context, category, locale string) ([]model.Translation, error)
	FindByCategory(ctx context.Context, category string) ([]model.Translation, error)
	FindByLocale(ctx context.Context, locale string) ([]model.Translation, error)
	FindAll(ctx context.Context) ([]model.Translation, error)
	// Save inserts the record when its ID is unset, assigning ID and
	// timestamps, and replaces it otherwise. Inserts that lose a race on the
	// unique triple index fail with ErrDuplicateTriple.
	Save(ctx context.Context, t *model.Translation) (*model.Translation, error)
	Delete(ctx context.Context, t *model.Translation) error
}

// LogsRepositoryInterface defines persistence operations for request and
// audit log entries.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, opts LogQueryOptions) ([]model.LogEntry, error)
}
