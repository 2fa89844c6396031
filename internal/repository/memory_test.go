package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/translation-service/internal/domain/model"
)

func newRecord(category, locale, key, value string) *model.Translation {
	return &model.Translation{
		Category:     category,
		Locale:       locale,
		Key:          key,
		Value:        value,
		InitialValue: value,
		MaxLength:    1024,
	}
}

func TestMemorySaveAssignsIdentity(t *testing.T) {
	repo := NewMemoryTranslationRepository()

	saved, err := repo.Save(context.Background(), newRecord("app", "en", "greeting", "Hello"))
	require.NoError(t, err)

	assert.False(t, saved.ID.IsZero())
	assert.False(t, saved.CreatedAt.IsZero())
	assert.False(t, saved.UpdatedAt.IsZero())
}

func TestMemorySaveDuplicateTriple(t *testing.T) {
	repo := NewMemoryTranslationRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, newRecord("app", "en", "greeting", "Hello"))
	require.NoError(t, err)

	_, err = repo.Save(ctx, newRecord("app", "en", "greeting", "Howdy"))
	assert.ErrorIs(t, err, ErrDuplicateTriple)
}

func TestMemoryConcurrentInsertSingleWinner(t *testing.T) {
	repo := NewMemoryTranslationRepository()
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Save(ctx, newRecord("app", "en", "greeting", "Hello"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var winners, losers int
	for err := range results {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrDuplicateTriple)
			losers++
		}
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, workers-1, losers)
}

func TestMemoryFindByTriple(t *testing.T) {
	repo := NewMemoryTranslationRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, newRecord("app", "en", "greeting", "Hello"))
	require.NoError(t, err)

	found, err := repo.FindByTriple(ctx, "app", "en", "greeting")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Hello", found.Value)

	missing, err := repo.FindByTriple(ctx, "app", "en", "farewell")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryFindReturnsCopy(t *testing.T) {
	repo := NewMemoryTranslationRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, newRecord("app", "en", "greeting", "Hello"))
	require.NoError(t, err)

	found, err := repo.FindByTriple(ctx, "app", "en", "greeting")
	require.NoError(t, err)
	found.Value = "mutated"

	again, err := repo.FindByTriple(ctx, "app", "en", "greeting")
	require.NoError(t, err)
	assert.Equal(t, "Hello", again.Value)
}

func TestMemoryFilters(t *testing.T) {
	repo := NewMemoryTranslationRepository()
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

	byCategory, err := repo.FindByCategory(ctx, "app")
	require.NoError(t, err)
	assert.Len(t, byCategory, 3)

	byLocale, err := repo.FindByLocale(ctx, "en")
	require.NoError(t, err)
	assert.Len(t, byLocale, 3)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	none, err := repo.FindByLocale(ctx, "de")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryUpdateExisting(t *testing.T) {
	repo := NewMemoryTranslationRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newRecord("app", "en", "greeting", "Hello"))
	require.NoError(t, err)

	updated := saved.WithValue("Hi", time.Now().Add(time.Second))
	_, err = repo.Save(ctx, &updated)
	require.NoError(t, err)

	found, err := repo.FindByTriple(ctx, "app", "en", "greeting")
	require.NoError(t, err)
	assert.Equal(t, "Hi", found.Value)
	assert.Equal(t, "Hello", found.InitialValue)
}

func TestMemoryUpdateUnknownID(t *testing.T) {
	repo := NewMemoryTranslationRepository()

	stale := newRecord("app", "en", "greeting", "Hello")
	stale.ID = primitive.NewObjectID()

	_, err := repo.Save(context.Background(), stale)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestMemoryDelete(t *testing.T) {
	repo := NewMemoryTranslationRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newRecord("app", "en", "greeting", "Hello"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved))

	found, err := repo.FindByTriple(ctx, "app", "en", "greeting")
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.ErrorIs(t, repo.Delete(ctx, saved), ErrRecordNotFound)
}
