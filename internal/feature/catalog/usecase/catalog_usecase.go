// Package usecase implements the business logic for catalog operations.
package usecase

import (
	"context"
	"errors"

	"econ_backend/internal/feature/catalog/domain/entity"
)

// ErrIndicatorNotFound is returned when no active indicator matches a
// (country, code) pair.
var ErrIndicatorNotFound = errors.New("indicator not found")

// IndicatorRepository abstracts the persistence layer for indicator catalog data.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type IndicatorRepository interface {
	ListActive(ctx context.Context) ([]entity.Indicator, error)
	ListActiveByCountry(ctx context.Context, country string) ([]entity.Indicator, error)
	ListCountries(ctx context.Context) ([]string, error)
	FindActive(ctx context.Context, country, code string) (entity.Indicator, error)
}

// CatalogUsecase provides business logic for catalog operations.
type CatalogUsecase struct {
	repo IndicatorRepository
}

// NewCatalogUsecase creates a new CatalogUsecase with the given repository.
func NewCatalogUsecase(r IndicatorRepository) *CatalogUsecase {
	return &CatalogUsecase{repo: r}
}

// ListCountries returns the distinct countries that have active indicators.
func (u *CatalogUsecase) ListCountries(ctx context.Context) ([]string, error) {
	return u.repo.ListCountries(ctx)
}

// ListByCountry returns the active indicators for one country in sort order.
func (u *CatalogUsecase) ListByCountry(ctx context.Context, country string) ([]entity.Indicator, error) {
	return u.repo.ListActiveByCountry(ctx, country)
}

// ListAll returns every active indicator across all countries.
func (u *CatalogUsecase) ListAll(ctx context.Context) ([]entity.Indicator, error) {
	return u.repo.ListActive(ctx)
}

// Find returns the active indicator for a (country, code) pair, or
// ErrIndicatorNotFound.
func (u *CatalogUsecase) Find(ctx context.Context, country, code string) (entity.Indicator, error) {
	return u.repo.FindActive(ctx, country, code)
}
