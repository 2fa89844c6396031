// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/translation-service/internal/domain/model"
)

type MockTranslationRepositoryInterface struct {
	mock.Mock
}

func (m *MockTranslationRepositoryInterface) FindByTriple(ctx context.Context, category, locale, key string) (*model.Translation, error) {
	args := m.Called(ctx, category, locale, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Translation), args.Error(1)
}

func (m *MockTranslationRepositoryInterface) ExistsByTriple(ctx context.Context, category, locale, key string) (bool, error) {
	args := m.Called(ctx, category, locale, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockTranslationRepositoryInterface) FindByCategoryAndLocale(ctx context.Context, category, locale string) ([]model.Translation, error) {
	args := m.Called(ctx, category, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Translation), args.Error(1)
}

func (m *MockTranslationRepositoryInterface) FindByCategory(ctx context.Context, category string) ([]model.Translation, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Translation), args.Error(1)
}

func (m *MockTranslationRepositoryInterface) FindByLocale(ctx context.Context, locale string) ([]model.Translation, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Translation), args.Error(1)
}

func (m *MockTranslationRepositoryInterface) FindAll(ctx context.Context) ([]model.Translation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Translation), args.Error(1)
}

func (m *MockTranslationRepositoryInterface) Save(ctx context.Context, t *model.Translation) (*model.Translation, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Translation), args.Error(1)
}

func (m *MockTranslationRepositoryInterface) Delete(ctx context.Context, t *model.Translation) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
