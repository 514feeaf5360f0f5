package services

import (
	"context"

	"mobilehut/internal/docstore"
	"mobilehut/internal/repos"
)

type UserService struct {
	Users *repos.UserRepo
}

func NewUserService(users *repos.UserRepo) *UserService { return &UserService{Users: users} }

// UserSplit is the buyer/seller listing. Both slices are always non-nil.
type UserSplit struct {
	AllBuyer  []docstore.Document `json:"allBuyer"`
	AllSeller []docstore.Document `json:"allSeller"`
}

func (s *UserService) Create(ctx context.Context, doc docstore.Document) (docstore.InsertResult, error) {
	return s.Users.Create(ctx, doc)
}

func (s *UserService) Delete(ctx context.Context, id string) (docstore.DeleteResult, error) {
	return s.Users.Delete(ctx, id)
}

func (s *UserService) Verify(ctx context.Context, id string) (docstore.UpdateResult, error) {
	return s.Users.Verify(ctx, id)
}

// Split runs two independent finds, one per role value.
func (s *UserService) Split(ctx context.Context, buyerRole, sellerRole string) (UserSplit, error) {
	buyers, err := s.Users.ListByRole(ctx, buyerRole)
	if err != nil {
		return UserSplit{}, err
	}
	sellers, err := s.Users.ListByRole(ctx, sellerRole)
	if err != nil {
		return UserSplit{}, err
	}
	return UserSplit{AllBuyer: buyers, AllSeller: sellers}, nil
}

// HasRole is false for unknown emails.
func (s *UserService) HasRole(ctx context.Context, email, role string) (bool, error) {
	u, err := s.Users.ByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u != nil && u.Role == role, nil
}
