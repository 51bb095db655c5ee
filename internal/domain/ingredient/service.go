package ingredient

import (
	"context"
	"strings"

	"foodgram/internal/pkg/apperror"
)

const importBatchSize = 500

type Service struct {
	repo  Repository
	cache *Cache
}

// NewService wires the catalog. cache may be nil.
func NewService(repo Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

func (s *Service) Get(ctx context.Context, id int64) (*Ingredient, error) {
	if ing, ok := s.cache.GetByID(ctx, id); ok {
		return ing, nil
	}
	ing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetByID(ctx, ing)
	return ing, nil
}

// Search lists ingredients whose name starts with prefix. An empty prefix
// returns the whole catalog.
func (s *Service) Search(ctx context.Context, prefix string) ([]Ingredient, error) {
	if items, ok := s.cache.GetPrefix(ctx, prefix); ok {
		return items, nil
	}
	items, err := s.repo.SearchByPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Ingredient{}
	}
	s.cache.SetPrefix(ctx, prefix, items)
	return items, nil
}

// Import bulk-loads catalog rows and drops cached lookups.
func (s *Service) Import(ctx context.Context, items []ImportItem) (int, error) {
	rows := make([]Ingredient, 0, len(items))
	for i, it := range items {
		name := strings.TrimSpace(it.Name)
		unit := strings.TrimSpace(it.MeasurementUnit)
		if name == "" || unit == "" {
			return 0, apperror.Validation("ingredient name and measurement_unit are required").
				WithField(importField(i))
		}
		if len([]rune(name)) > 128 || len([]rune(unit)) > 64 {
			return 0, apperror.Validation("ingredient name or measurement_unit too long").
				WithField(importField(i))
		}
		rows = append(rows, Ingredient{Name: name, MeasurementUnit: unit})
	}

	if err := s.repo.CreateInBatches(ctx, rows, importBatchSize); err != nil {
		return 0, err
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		return len(rows), err
	}
	return len(rows), nil
}

// Empty reports whether the catalog has no rows yet.
func (s *Service) Empty(ctx context.Context) (bool, error) {
	n, err := s.repo.Count(ctx)
	return n == 0, err
}
