package repos

import (
	"context"

	"mobilehut/internal/docstore"
	"mobilehut/internal/domain"
)

type UserRepo struct{ c docstore.Collection }

func NewUserRepo(s docstore.Store) *UserRepo {
	return &UserRepo{c: s.Collection(domain.UserCollection)}
}

func (r *UserRepo) Create(ctx context.Context, doc docstore.Document) (docstore.InsertResult, error) {
	return r.c.InsertOne(ctx, doc)
}

// ByEmail returns nil, nil when no user has that email.
func (r *UserRepo) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	doc, err := r.c.FindOne(ctx, docstore.Filter{domain.UserEmailField: email})
	if err != nil || doc == nil {
		return nil, err
	}
	return &domain.User{
		ID:     doc.String(docstore.IDField),
		Email:  doc.String(domain.UserEmailField),
		Name:   doc.String("name"),
		Role:   doc.String(domain.UserRoleField),
		Status: doc.String(domain.UserStatusField),
	}, nil
}

// ListByRole matches the stored "user" attribute literally.
func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]docstore.Document, error) {
	return r.c.Find(ctx, docstore.Filter{domain.UserRoleField: role})
}

func (r *UserRepo) Delete(ctx context.Context, id string) (docstore.DeleteResult, error) {
	return r.c.DeleteOne(ctx, docstore.ByID(id))
}

// Verify sets the verify marker with upsert and no state guard.
func (r *UserRepo) Verify(ctx context.Context, id string) (docstore.UpdateResult, error) {
	return r.c.UpdateOne(ctx, docstore.ByID(id), docstore.Document{domain.UserStatusField: domain.StatusVerified}, true)
}
