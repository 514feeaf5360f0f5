package services

import (
	"context"

	"mobilehut/internal/docstore"
	"mobilehut/internal/repos"
)

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
	Ads   *repos.AdvertiseRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo, ads *repos.AdvertiseRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods, Ads: ads}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]docstore.Document, error) {
	return s.Cats.List(ctx)
}

func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID string) ([]docstore.Document, error) {
	return s.Prods.ListByCategory(ctx, categoryID)
}

func (s *CatalogService) ProductsBySeller(ctx context.Context, email string) ([]docstore.Document, error) {
	return s.Prods.ListBySeller(ctx, email)
}

func (s *CatalogService) AdvertisedProducts(ctx context.Context) ([]docstore.Document, error) {
	return s.Prods.ListAdvertised(ctx)
}

func (s *CatalogService) CreateProduct(ctx context.Context, doc docstore.Document) (docstore.InsertResult, error) {
	return s.Prods.Create(ctx, doc)
}

func (s *CatalogService) AdvertiseProduct(ctx context.Context, id string) (docstore.UpdateResult, error) {
	return s.Prods.MarkAdvertised(ctx, id)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) (docstore.DeleteResult, error) {
	return s.Prods.Delete(ctx, id)
}

func (s *CatalogService) CreateAdvertisement(ctx context.Context, doc docstore.Document) (docstore.InsertResult, error) {
	return s.Ads.Create(ctx, doc)
}
