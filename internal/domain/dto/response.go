package dto

import "time"

// ISOLocalDateTime is the timestamp layout used in translation responses.
const ISOLocalDateTime = "2006-01-02T15:04:05"

// TranslationResponse is the record shape returned by all translation
// endpoints. Timestamps are formatted as ISO-8601 local date-time.
type TranslationResponse struct {
	ID           string `json:"id" example:"65f0c1a2b3d4e5f607182930"`
	Category     string `json:"category" example:"app"`
	Locale       string `json:"locale" example:"en"`
	Key          string `json:"key" example:"greeting"`
	Value        string `json:"value" example:"Hello"`
	InitialValue string `json:"initialValue" example:"Hello"`
	MaxLength    int    `json:"maxLength" example:"50"`
	CreatedAt    string `json:"createdAt" example:"2025-01-28T10:00:00"`
	UpdatedAt    string `json:"updatedAt" example:"2025-01-28T10:00:00"`
	IsCustomizable bool `json:"isCustomizable" example:"true"`
} // @name TranslationResponse

// TranslationListResponse wraps a list of translations with its count.
type TranslationListResponse struct {
	Translations []TranslationResponse `json:"translations"`
	Count        int                   `json:"count" example:"2"`
} // @name TranslationListResponse

// ErrorResponse is the error body for validation and domain errors
// (400/404/409/500).
type ErrorResponse struct {
	Status  int    `json:"status" example:"404"`
	Error   string `json:"error" example:"Translation Not Found"`
	Message string `json:"message" example:"translation not found for category=\"app\", locale=\"en\", key=\"greeting\""`
} // @name ErrorResponse

// NewErrorResponse creates an ErrorResponse with the given status, error
// label, and message.
func NewErrorResponse(status int, errLabel, message string) ErrorResponse {
	return ErrorResponse{Status: status, Error: errLabel, Message: message}
}

// AuthErrorResponse is the fixed-shape body for authentication failures
// (401). Timestamp is epoch milliseconds.
type AuthErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Message   string `json:"message" example:"Invalid API key"`
	Timestamp int64  `json:"timestamp" example:"1738051200000"`
} // @name AuthErrorResponse

// NewAuthError creates an AuthErrorResponse with the current timestamp.
func NewAuthError(message string) AuthErrorResponse {
	return AuthErrorResponse{
		Success:   false,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	}
}
