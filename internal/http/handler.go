// Package http provides the HTTP surface of the translation service.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/translation-service/internal/domain/dto"
	"github.com/guttosm/translation-service/internal/metrics"
	"github.com/guttosm/translation-service/internal/middleware"
	"github.com/guttosm/translation-service/internal/service"
)

// TranslationHandler provides HTTP handlers for translation routes.
type TranslationHandler struct {
	service        service.TranslationService
	loggingService service.LoggingService
}

// NewTranslationHandler creates a new TranslationHandler.
func NewTranslationHandler(svc service.TranslationService, loggingService service.LoggingService) *TranslationHandler {
	return &TranslationHandler{
		service:        svc,
		loggingService: loggingService,
	}
}

// Create handles POST /api/translations.
//
// @Summary      Create a translation
// @Description  Creates a new translation record. The submitted value becomes both the current and the initial value; maxLength outside (0, 1024) is normalized to 1024.
// @Tags         Translations
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTranslationRequest true "Translation to create"
// @Success      201 {object} dto.TranslationResponse
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      401 {object} dto.AuthErrorResponse "Missing or invalid API key"
// @Failure      409 {object} dto.ErrorResponse "Triple already exists"
// @Security     ApiKeyAuth
// @Router       /api/translations [post]
func (h *TranslationHandler) Create(c *gin.Context) {
	var req dto.CreateTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		metrics.RecordTranslationOperation("create", "error")
		h.respondServiceError(c, err)
		return
	}

	metrics.RecordTranslationOperation("create", "success")
	middleware.AuditLog(h.loggingService, c, "create_translation", "Translation created", map[string]interface{}{
		"category": req.Category,
		"locale":   req.Locale,
		"key":      req.Key,
	})
	c.JSON(http.StatusCreated, resp)
}

// Update handles PUT /api/translations.
//
// @Summary      Update a translation value
// @Description  Replaces the current value of an existing record and refreshes updatedAt. Identity fields, initialValue, and maxLength never change.
// @Tags         Translations
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateTranslationRequest true "Value update"
// @Success      200 {object} dto.TranslationResponse
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      401 {object} dto.AuthErrorResponse "Missing or invalid API key"
// @Failure      404 {object} dto.ErrorResponse "Triple not found"
// @Security     ApiKeyAuth
// @Router       /api/translations [put]
func (h *TranslationHandler) Update(c *gin.Context) {
	var req dto.UpdateTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		metrics.RecordTranslationOperation("update", "error")
		h.respondServiceError(c, err)
		return
	}

	metrics.RecordTranslationOperation("update", "success")
	middleware.AuditLog(h.loggingService, c, "update_translation", "Translation updated", map[string]interface{}{
		"category": req.Category,
		"locale":   req.Locale,
		"key":      req.Key,
	})
	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/translations.
//
// @Summary      Delete a translation
// @Tags         Translations
// @Produce      json
// @Param        category query string true "Category"
// @Param        locale   query string true "Locale"
// @Param        key      query string true "Key"
// @Success      204 "Deleted"
// @Failure      401 {object} dto.AuthErrorResponse "Missing or invalid API key"
// @Failure      404 {object} dto.ErrorResponse "Triple not found"
// @Security     ApiKeyAuth
// @Router       /api/translations [delete]
func (h *TranslationHandler) Delete(c *gin.Context) {
	category := c.Query("category")
	locale := c.Query("locale")
	key := c.Query("key")
	if err := dto.ValidateTriple(category, locale, key); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), category, locale, key); err != nil {
		metrics.RecordTranslationOperation("delete", "error")
		h.respondServiceError(c, err)
		return
	}

	metrics.RecordTranslationOperation("delete", "success")
	middleware.AuditLog(h.loggingService, c, "delete_translation", "Translation deleted", map[string]interface{}{
		"category": category,
		"locale":   locale,
		"key":      key,
	})
	c.Status(http.StatusNoContent)
}

// GetSingle handles GET /api/translations/single.
//
// @Summary      Get a single translation
// @Description  Returns the record for the triple. With initialValue=true the value field carries the creation-time value.
// @Tags         Translations
// @Produce      json
// @Param        category     query string true  "Category"
// @Param        locale       query string true  "Locale"
// @Param        key          query string true  "Key"
// @Param        initialValue query bool   false "Return the initial value" default(false)
// @Success      200 {object} dto.TranslationResponse
// @Failure      401 {object} dto.AuthErrorResponse "Missing or invalid API key"
// @Failure      404 {object} dto.ErrorResponse "Triple not found"
// @Security     ApiKeyAuth
// @Router       /api/translations/single [get]
func (h *TranslationHandler) GetSingle(c *gin.Context) {
	category := c.Query("category")
	locale := c.Query("locale")
	key := c.Query("key")
	if err := dto.ValidateTriple(category, locale, key); err != nil {
		respondBadRequest(c, err)
		return
	}

	useInitial, err := parseInitialValue(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.service.Get(c.Request.Context(), category, locale, key, useInitial)
	if err != nil {
		metrics.RecordTranslationOperation("get", "error")
		h.respondServiceError(c, err)
		return
	}

	metrics.RecordTranslationOperation("get", "success")
	c.JSON(http.StatusOK, resp)
}

// GetByCategory handles GET /api/translations/category.
//
// @Summary      List translations by category and locale
// @Tags         Translations
// @Produce      json
// @Param        category     query string true  "Category"
// @Param        locale       query string true  "Locale"
// @Param        initialValue query bool   false "Return initial values" default(false)
// @Success      200 {object} dto.TranslationListResponse
// @Failure      401 {object} dto.AuthErrorResponse "Missing or invalid API key"
// @Security     ApiKeyAuth
// @Router       /api/translations/category [get]
func (h *TranslationHandler) GetByCategory(c *gin.Context) {
	category := c.Query("category")
	locale := c.Query("locale")
	if err := dto.ValidateCategoryLocale(category, locale); err != nil {
		respondBadRequest(c, err)
		return
	}

	useInitial, err := parseInitialValue(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.service.ListByCategoryAndLocale(c.Request.Context(), category, locale, useInitial)
	if err != nil {
		metrics.RecordTranslationOperation("list_category", "error")
		h.respondServiceError(c, err)
		return
	}

	metrics.RecordTranslationOperation("list_category", "success")
	c.JSON(http.StatusOK, resp)
}

// GetByLocale handles GET /api/translations/locale.
//
// @Summary      List translations by locale
// @Tags         Translations
// @Produce      json
// @Param        locale       query string true  "Locale"
// @Param        initialValue query bool   false "Return initial values" default(false)
// @Success      200 {object} dto.TranslationListResponse
// @Failure      401 {object} dto.AuthErrorResponse "Missing or invalid API key"
// @Security     ApiKeyAuth
// @Router       /api/translations/locale [get]
func (h *TranslationHandler) GetByLocale(c *gin.Context) {
	locale := c.Query("locale")
	if err := dto.ValidateLocale(locale); err != nil {
		respondBadRequest(c, err)
		return
	}

	useInitial, err := parseInitialValue(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.service.ListByLocale(c.Request.Context(), locale, useInitial)
	if err != nil {
		metrics.RecordTranslationOperation("list_locale", "error")
		h.respondServiceError(c, err)
		return
	}

	metrics.RecordTranslationOperation("list_locale", "success")
	c.JSON(http.StatusOK, resp)
}

// parseInitialValue parses the optional initialValue query flag.
func parseInitialValue(c *gin.Context) (bool, error) {
	raw := c.DefaultQuery("initialValue", "false")
	useInitial, err := strconv.ParseBool(raw)
	if err != nil {
		return false, dto.FieldErrors{{Field: "initialValue", Message: "must be a boolean"}}
	}
	return useInitial, nil
}

// respondBadRequest sends a 400 with the validation failure message.
func respondBadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
		http.StatusBadRequest,
		"Bad Request",
		err.Error(),
	))
}

// respondServiceError is the single place where domain errors are translated
// to HTTP statuses.
func (h *TranslationHandler) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTranslationExists):
		c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponse(
			http.StatusConflict,
			"Translation Already Exists",
			err.Error(),
		))
	case errors.Is(err, service.ErrTranslationNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(
			http.StatusNotFound,
			"Translation Not Found",
			err.Error(),
		))
	default:
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError,
			"Internal Server Error",
			"An unexpected error occurred",
		))
	}
}
