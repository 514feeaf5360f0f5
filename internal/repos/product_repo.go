package repos

import (
	"context"

	"mobilehut/internal/docstore"
	"mobilehut/internal/domain"
)

type ProductRepo struct{ c docstore.Collection }

func NewProductRepo(s docstore.Store) *ProductRepo {
	return &ProductRepo{c: s.Collection(domain.ProductCollection)}
}

func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID string) ([]docstore.Document, error) {
	return r.c.Find(ctx, docstore.Filter{"categoryId": categoryID})
}

func (r *ProductRepo) ListBySeller(ctx context.Context, email string) ([]docstore.Document, error) {
	return r.c.Find(ctx, docstore.Filter{"sellerEmail": email})
}

// ListAdvertised returns products flagged for advertising and not yet paid.
func (r *ProductRepo) ListAdvertised(ctx context.Context) ([]docstore.Document, error) {
	return r.c.Find(ctx, docstore.Filter{"advertise": true, "paid": false})
}

func (r *ProductRepo) Create(ctx context.Context, doc docstore.Document) (docstore.InsertResult, error) {
	return r.c.InsertOne(ctx, doc)
}

// MarkAdvertised upserts, so an unknown id creates a bare flagged document.
func (r *ProductRepo) MarkAdvertised(ctx context.Context, id string) (docstore.UpdateResult, error) {
	return r.c.UpdateOne(ctx, docstore.ByID(id), docstore.Document{"advertise": true, "paid": false}, true)
}

func (r *ProductRepo) Delete(ctx context.Context, id string) (docstore.DeleteResult, error) {
	return r.c.DeleteOne(ctx, docstore.ByID(id))
}

// MarkPaid never upserts: a payment naming a missing product changes nothing.
func (r *ProductRepo) MarkPaid(ctx context.Context, id, transactionID string) (docstore.UpdateResult, error) {
	return r.c.UpdateOne(ctx, docstore.ByID(id), paidFields(transactionID), false)
}

func paidFields(transactionID string) docstore.Document {
	return docstore.Document{"paid": true, "advertise": false, "transactionId": transactionID}
}
