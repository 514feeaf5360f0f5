package repos

import (
	"context"

	"mobilehut/internal/docstore"
	"mobilehut/internal/domain"
)

type AdvertiseRepo struct{ c docstore.Collection }

func NewAdvertiseRepo(s docstore.Store) *AdvertiseRepo {
	return &AdvertiseRepo{c: s.Collection(domain.AdvertiseCollection)}
}

func (r *AdvertiseRepo) Create(ctx context.Context, doc docstore.Document) (docstore.InsertResult, error) {
	return r.c.InsertOne(ctx, doc)
}
