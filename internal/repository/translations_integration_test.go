//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/translation-service/internal/domain/model"
	"github.com/guttosm/translation-service/internal/testutil"
)

func setupMongoRepository(t *testing.T) (*TranslationRepository, *MongoDB) {
	t.Helper()
	ctx := context.Background()

	container, err := testutil.SetupMongoDB(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Cleanup(context.Background())
	})

	db, err := NewMongoDB(container.URI, "translation_service_test")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(context.Background())
	})

	return NewTranslationRepository(db), db
}

func TestMongoSaveAndFindByTriple(t *testing.T) {
	repo, _ := setupMongoRepository(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newRecord("app", "en", "greeting", "Hello"))
	require.NoError(t, err)
	assert.False(t, saved.ID.IsZero())

	found, err := repo.FindByTriple(ctx, "app", "en", "greeting")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, saved.ID, found.ID)
	assert.Equal(t, "Hello", found.Value)
	assert.Equal(t, "Hello", found.InitialValue)

	missing, err := repo.FindByTriple(ctx, "app", "en", "farewell")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMongoUniqueTripleIndex(t *testing.T) {
	repo, _ := setupMongoRepository(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, newRecord("app", "en", "greeting", "Hello"))
	require.NoError(t, err)

	_, err = repo.Save(ctx, newRecord("app", "en", "greeting", "Howdy"))
	assert.ErrorIs(t, err, ErrDuplicateTriple)

	// Differing in one triple component is a distinct record.
	_, err = repo.Save(ctx, newRecord("app", "pt", "greeting", "Olá"))
	assert.NoError(t, err)
}

func TestMongoUpdateRoundtrip(t *testing.T) {
	repo, _ := setupMongoRepository(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newRecord("app", "en", "greeting", "Hello"))
	require.NoError(t, err)

	updated := saved.WithValue("Hi", time.Now())
	_, err = repo.Save(ctx, &updated)
	require.NoError(t, err)

	found, err := repo.FindByTriple(ctx, "app", "en", "greeting")
	require.NoError(t, err)
	assert.Equal(t, "Hi", found.Value)
	assert.Equal(t, "Hello", found.InitialValue)
}

func TestMongoListQueries(t *testing.T) {
	repo, _ := setupMongoRepository(t)
	ctx := context.Background()

	seed := []*model.Translation{
		newRecord("app", "en", "greeting", "Hello"),
		newRecord("app", "en", "farewell", "Bye"),
		newRecord("app", "pt", "greeting", "Olá"),
		newRecord("emails", "en", "subject", "Welcome"),
	}
	for _, rec := range seed {
		_, err := repo.Save(ctx, rec)
		require.NoError(t, err)
	}

	byBoth, err := repo.FindByCategoryAndLocale(ctx, "app", "en")
	require.NoError(t, err)
	assert.Len(t, byBoth, 2)

	byLocale, err := repo.FindByLocale(ctx, "en")
	require.NoError(t, err)
	assert.Len(t, byLocale, 3)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestMongoDelete(t *testing.T) {
	repo, _ := setupMongoRepository(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newRecord("app", "en", "greeting", "Hello"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved))
	assert.ErrorIs(t, repo.Delete(ctx, saved), ErrRecordNotFound)
}

func TestMongoLogsRepository(t *testing.T) {
	_, db := setupMongoRepository(t)
	ctx := context.Background()

	logsRepo := NewLogsRepository(db)

	entry := &model.LogEntry{
		Level:      "info",
		Message:    "Translation created",
		RequestID:  "req-1",
		TenantID:   "acme",
		ActionType: "create_translation",
	}
	require.NoError(t, logsRepo.Create(ctx, entry))

	entries, err := logsRepo.Query(ctx, LogQueryOptions{TenantID: "acme"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "create_translation", entries[0].ActionType)
	assert.Equal(t, "req-1", entries[0].RequestID)
}

func TestMongoHealthCheck(t *testing.T) {
	_, db := setupMongoRepository(t)
	assert.NoError(t, db.HealthCheck(context.Background()))
}
