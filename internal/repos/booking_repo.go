package repos

import (
	"context"

	"mobilehut/internal/docstore"
	"mobilehut/internal/domain"
)

type BookingRepo struct{ c docstore.Collection }

func NewBookingRepo(s docstore.Store) *BookingRepo {
	return &BookingRepo{c: s.Collection(domain.BookingCollection)}
}

func (r *BookingRepo) Create(ctx context.Context, doc docstore.Document) (docstore.InsertResult, error) {
	return r.c.InsertOne(ctx, doc)
}

func (r *BookingRepo) ListByBuyer(ctx context.Context, email string) ([]docstore.Document, error) {
	return r.c.Find(ctx, docstore.Filter{"buyerEmail": email})
}

func (r *BookingRepo) ListBySeller(ctx context.Context, email string) ([]docstore.Document, error) {
	return r.c.Find(ctx, docstore.Filter{"sellerEmail": email})
}

// Get returns nil, nil for an unknown id.
func (r *BookingRepo) Get(ctx context.Context, id string) (docstore.Document, error) {
	return r.c.FindOne(ctx, docstore.ByID(id))
}

func (r *BookingRepo) MarkPaid(ctx context.Context, id, transactionID string) (docstore.UpdateResult, error) {
	return r.c.UpdateOne(ctx, docstore.ByID(id), paidFields(transactionID), false)
}
