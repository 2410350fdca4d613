// Package mocks содержит testify-моки зависимостей, общих для нескольких сервисов.
package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// Cache мок кеша с Get/Set/Invalidate.
type Cache struct{ mock.Mock }

func (m *Cache) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *Cache) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}

// Invalidate регистрирует вызов с ключами, переданными срезом.
func (m *Cache) Invalidate(keys ...string) error {
	return m.Called(keys).Error(0)
}

// NewNoopCache возвращает мок, принимающий любые вызовы: промах на Get, успех на Set и Invalidate.
func NewNoopCache() *Cache {
	c := new(Cache)
	c.On("Get", mock.Anything, mock.Anything).Return(false, nil).Maybe()
	c.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	c.On("Invalidate", mock.Anything).Return(nil).Maybe()
	return c
}
