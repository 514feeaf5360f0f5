package repos

import (
	"context"

	"mobilehut/internal/docstore"
	"mobilehut/internal/domain"
)

type CategoryRepo struct{ c docstore.Collection }

func NewCategoryRepo(s docstore.Store) *CategoryRepo {
	return &CategoryRepo{c: s.Collection(domain.CategoryCollection)}
}

func (r *CategoryRepo) List(ctx context.Context) ([]docstore.Document, error) {
	return r.c.Find(ctx, docstore.Filter{})
}
