package repos

import (
	"context"

	"mobilehut/internal/docstore"
	"mobilehut/internal/domain"
)

type PaymentRepo struct{ c docstore.Collection }

func NewPaymentRepo(s docstore.Store) *PaymentRepo {
	return &PaymentRepo{c: s.Collection(domain.PaymentCollection)}
}

func (r *PaymentRepo) Create(ctx context.Context, doc docstore.Document) (docstore.InsertResult, error) {
	return r.c.InsertOne(ctx, doc)
}

func (r *PaymentRepo) ListBySeller(ctx context.Context, email string) ([]docstore.Document, error) {
	return r.c.Find(ctx, docstore.Filter{"sellerEmail": email})
}
