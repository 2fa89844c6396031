package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/translation-service/internal/domain/model"
)

// TranslationRepository is the MongoDB-backed translation store.
type TranslationRepository struct {
	collection *mongo.Collection
}

// NewTranslationRepository creates a new translation repository.
func NewTranslationRepository(db *MongoDB) *TranslationRepository {
	return &TranslationRepository{collection: db.Translations}
}

func tripleFilter(category, locale, key string) bson.M {
	return bson.M{"category": category, "locale": locale, "key_name": key}
}

// FindByTriple returns the record for the given triple, or (nil, nil) when absent.
func (r *TranslationRepository) FindByTriple(ctx context.Context, category, locale, key string) (*model.Translation, error) {
	var t model.Translation
	err := r.collection.FindOne(ctx, tripleFilter(category, locale, key)).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ExistsByTriple reports whether a record exists for the given triple.
func (r *TranslationRepository) ExistsByTriple(ctx context.Context, category, locale, key string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, tripleFilter(category, locale, key))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByCategoryAndLocale returns all records matching category and locale.
func (r *TranslationRepository) FindByCategoryAndLocale(ctx context.Context, category, locale string) ([]model.Translation, error) {
	return r.find(ctx, bson.M{"category": category, "locale": locale})
}

// FindByCategory returns all records in a category.
func (r *TranslationRepository) FindByCategory(ctx context.Context, category string) ([]model.Translation, error) {
	return r.find(ctx, bson.M{"category": category})
}

// FindByLocale returns all records for a locale.
func (r *TranslationRepository) FindByLocale(ctx context.Context, locale string) ([]model.Translation, error) {
	return r.find(ctx, bson.M{"locale": locale})
}

// FindAll returns every translation record.
func (r *TranslationRepository) FindAll(ctx context.Context) ([]model.Translation, error) {
	return r.find(ctx, bson.M{})
}

func (r *TranslationRepository) find(ctx context.Context, filter bson.M) ([]model.Translation, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var translations []model.Translation
	if err := cursor.All(ctx, &translations); err != nil {
		return nil, err
	}
	return translations, nil
}

// Save inserts the record when its ID is unset and replaces it otherwise.
// Inserts that violate the unique triple index fail with ErrDuplicateTriple.
func (r *TranslationRepository) Save(ctx context.Context, t *model.Translation) (*model.Translation, error) {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
		now := time.Now()
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		if t.UpdatedAt.IsZero() {
			t.UpdatedAt = now
		}
		if _, err := r.collection.InsertOne(ctx, t); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, ErrDuplicateTriple
			}
			return nil, err
		}
		return t, nil
	}

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrRecordNotFound
	}
	return t, nil
}

// Delete removes the record by ID.
func (r *TranslationRepository) Delete(ctx context.Context, t *model.Translation) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": t.ID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}
