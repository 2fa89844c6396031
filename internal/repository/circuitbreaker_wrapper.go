package repository

import (
	"context"
	"errors"

	"github.com/guttosm/translation-service/internal/circuitbreaker"
	"github.com/guttosm/translation-service/internal/domain/model"
)

// TranslationRepositoryWithCircuitBreaker wraps a translation repository with
// circuit breaker protection. When the breaker is open, calls fail fast with
// circuitbreaker.ErrCircuitOpen instead of hitting a struggling database.
type TranslationRepositoryWithCircuitBreaker struct {
	repo TranslationRepositoryInterface
	cb   *circuitbreaker.CircuitBreaker
}

// NewTranslationRepositoryWithCircuitBreaker wraps repo with the given breaker.
func NewTranslationRepositoryWithCircuitBreaker(
	repo TranslationRepositoryInterface,
	cb *circuitbreaker.CircuitBreaker,
) *TranslationRepositoryWithCircuitBreaker {
	return &TranslationRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

// FindByTriple delegates with circuit breaker protection.
func (w *TranslationRepositoryWithCircuitBreaker) FindByTriple(ctx context.Context, category, locale, key string) (*model.Translation, error) {
	var result *model.Translation
	err := w.cb.Execute(func() error {
		var innerErr error
		result, innerErr = w.repo.FindByTriple(ctx, category, locale, key)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ExistsByTriple delegates with circuit breaker protection.
func (w *TranslationRepositoryWithCircuitBreaker) ExistsByTriple(ctx context.Context, category, locale, key string) (bool, error) {
	var result bool
	err := w.cb.Execute(func() error {
		var innerErr error
		result, innerErr = w.repo.ExistsByTriple(ctx, category, locale, key)
		return innerErr
	})
	if err != nil {
		return false, err
	}
	return result, nil
}

// FindByCategoryAndLocale delegates with circuit breaker protection.
func (w *TranslationRepositoryWithCircuitBreaker) FindByCategoryAndLocale(ctx context.Context, category, locale string) ([]model.Translation, error) {
	return w.executeFind(func() ([]model.Translation, error) {
		return w.repo.FindByCategoryAndLocale(ctx, category, locale)
	})
}

// FindByCategory delegates with circuit breaker protection.
func (w *TranslationRepositoryWithCircuitBreaker) FindByCategory(ctx context.Context, category string) ([]model.Translation, error) {
	return w.executeFind(func() ([]model.Translation, error) {
		return w.repo.FindByCategory(ctx, category)
	})
}

// FindByLocale delegates with circuit breaker protection.
func (w *TranslationRepositoryWithCircuitBreaker) FindByLocale(ctx context.Context, locale string) ([]model.Translation, error) {
	return w.executeFind(func() ([]model.Translation, error) {
		return w.repo.FindByLocale(ctx, locale)
	})
}

// FindAll delegates with circuit breaker protection.
func (w *TranslationRepositoryWithCircuitBreaker) FindAll(ctx context.Context) ([]model.Translation, error) {
	return w.executeFind(func() ([]model.Translation, error) {
		return w.repo.FindAll(ctx)
	})
}

func (w *TranslationRepositoryWithCircuitBreaker) executeFind(find func() ([]model.Translation, error)) ([]model.Translation, error) {
	var result []model.Translation
	err := w.cb.Execute(func() error {
		var innerErr error
		result, innerErr = find()
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Save delegates with circuit breaker protection. Constraint conflicts
// (ErrDuplicateTriple, ErrRecordNotFound) are domain outcomes: they do not
// count toward the breaker's failure threshold but are returned unchanged.
func (w *TranslationRepositoryWithCircuitBreaker) Save(ctx context.Context, t *model.Translation) (*model.Translation, error) {
	var result *model.Translation
	var domainErr error
	err := w.cb.Execute(func() error {
		var innerErr error
		result, innerErr = w.repo.Save(ctx, t)
		if errors.Is(innerErr, ErrDuplicateTriple) || errors.Is(innerErr, ErrRecordNotFound) {
			domainErr = innerErr
			return nil
		}
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	if domainErr != nil {
		return nil, domainErr
	}
	return result, nil
}

// Delete delegates with circuit breaker protection. ErrRecordNotFound is a
// domain outcome and does not trip the breaker.
func (w *TranslationRepositoryWithCircuitBreaker) Delete(ctx context.Context, t *model.Translation) error {
	var domainErr error
	err := w.cb.Execute(func() error {
		innerErr := w.repo.Delete(ctx, t)
		if errors.Is(innerErr, ErrRecordNotFound) {
			domainErr = innerErr
			return nil
		}
		return innerErr
	})
	if err != nil {
		return err
	}
	return domainErr
}
