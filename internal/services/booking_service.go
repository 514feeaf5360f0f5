package services

import (
	"context"

	"mobilehut/internal/docstore"
	"mobilehut/internal/repos"
)

type BookingService struct {
	Repo *repos.BookingRepo
}

func NewBookingService(r *repos.BookingRepo) *BookingService { return &BookingService{Repo: r} }

func (s *BookingService) Create(ctx context.Context, doc docstore.Document) (docstore.InsertResult, error) {
	return s.Repo.Create(ctx, doc)
}

func (s *BookingService) ByBuyer(ctx context.Context, email string) ([]docstore.Document, error) {
	return s.Repo.ListByBuyer(ctx, email)
}

func (s *BookingService) BySeller(ctx context.Context, email string) ([]docstore.Document, error) {
	return s.Repo.ListBySeller(ctx, email)
}

func (s *BookingService) Get(ctx context.Context, id string) (docstore.Document, error) {
	return s.Repo.Get(ctx, id)
}
