// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model. Validation is explicit:
// each request type exposes a Validate method that returns the full list of
// field errors instead of failing on the first one.
package dto

import (
	"strings"
)

const (
	maxCategoryLength = 100
	maxLocaleLength   = 10
	maxKeyLength      = 200
	maxLengthCeiling  = 1024
)

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error returns the error message for FieldError.
func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// FieldErrors is a list of field validation failures.
type FieldErrors []FieldError

// Error joins all field errors into a single message.
func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// CreateTranslationRequest is the JSON body for POST /api/translations.
type CreateTranslationRequest struct {
	Category  string `json:"category" example:"app"`
	Locale    string `json:"locale" example:"en"`
	Key       string `json:"key" example:"greeting"`
	Value     string `json:"value" example:"Hello"`
	MaxLength int    `json:"maxLength" example:"50" minimum:"0" maximum:"1024"`
} // @name CreateTranslationRequest

// Validate checks all fields and returns the accumulated field errors,
// or nil when the request is valid.
func (r *CreateTranslationRequest) Validate() error {
	var errs FieldErrors
	errs = appendTripleErrors(errs, r.Category, r.Locale, r.Key)
	if isBlank(r.Value) {
		errs = append(errs, FieldError{Field: "value", Message: "must not be blank"})
	}
	if r.MaxLength < 0 || r.MaxLength > maxLengthCeiling {
		errs = append(errs, FieldError{Field: "maxLength", Message: "must be between 0 and 1024"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateTranslationRequest is the JSON body for PUT /api/translations.
// Only the current value of an existing record can change.
type UpdateTranslationRequest struct {
	Category string `json:"category" example:"app"`
	Locale   string `json:"locale" example:"en"`
	Key      string `json:"key" example:"greeting"`
	Value    string `json:"value" example:"Hi"`
} // @name UpdateTranslationRequest

// Validate checks all fields and returns the accumulated field errors,
// or nil when the request is valid.
func (r *UpdateTranslationRequest) Validate() error {
	var errs FieldErrors
	errs = appendTripleErrors(errs, r.Category, r.Locale, r.Key)
	if isBlank(r.Value) {
		errs = append(errs, FieldError{Field: "value", Message: "must not be blank"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateTriple validates the (category, locale, key) identifier as passed
// in query parameters of DELETE and GET requests.
func ValidateTriple(category, locale, key string) error {
	var errs FieldErrors
	errs = appendTripleErrors(errs, category, locale, key)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateCategoryLocale validates the category/locale pair used by the
// category list endpoint.
func ValidateCategoryLocale(category, locale string) error {
	var errs FieldErrors
	switch {
	case isBlank(category):
		errs = append(errs, FieldError{Field: "category", Message: "must not be blank"})
	case len(category) > maxCategoryLength:
		errs = append(errs, FieldError{Field: "category", Message: "must be at most 100 characters"})
	}
	if err := ValidateLocale(locale); err != nil {
		errs = append(errs, err.(FieldErrors)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateLocale validates a lone locale query parameter.
func ValidateLocale(locale string) error {
	var errs FieldErrors
	switch {
	case isBlank(locale):
		errs = append(errs, FieldError{Field: "locale", Message: "must not be blank"})
	case len(locale) > maxLocaleLength:
		errs = append(errs, FieldError{Field: "locale", Message: "must be at most 10 characters"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func appendTripleErrors(errs FieldErrors, category, locale, key string) FieldErrors {
	switch {
	case isBlank(category):
		errs = append(errs, FieldError{Field: "category", Message: "must not be blank"})
	case len(category) > maxCategoryLength:
		errs = append(errs, FieldError{Field: "category", Message: "must be at most 100 characters"})
	}
	switch {
	case isBlank(locale):
		errs = append(errs, FieldError{Field: "locale", Message: "must not be blank"})
	case len(locale) > maxLocaleLength:
		errs = append(errs, FieldError{Field: "locale", Message: "must be at most 10 characters"})
	}
	switch {
	case isBlank(key):
		errs = append(errs, FieldError{Field: "key", Message: "must not be blank"})
	case len(key) > maxKeyLength:
		errs = append(errs, FieldError{Field: "key", Message: "must be at most 200 characters"})
	}
	return errs
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
