// Package model provides domain models for the translation service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Translation is a localized text string identified by the unique
// (category, locale, key) triple.
//
// Value is the only mutable field after creation; InitialValue keeps the
// text captured at creation time as a reset reference. MaxLength is the
// effective length constraint for the string, clamped to (0, 1024] by the
// service before the record is stored.
type Translation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category     string             `bson:"category" json:"category"`
	Locale       string             `bson:"locale" json:"locale"`
	Key          string             `bson:"key_name" json:"key"`
	Value        string             `bson:"translation" json:"value"`
	InitialValue string             `bson:"initial_translation" json:"initialValue"`
	MaxLength    int                `bson:"max_length" json:"maxLength"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// WithValue returns a copy of the translation with a new current value and
// updated timestamp. All identity fields and the initial value are carried
// over unchanged.
func (t Translation) WithValue(value string, updatedAt time.Time) Translation {
	t.Value = value
	t.UpdatedAt = updatedAt
	return t
}
