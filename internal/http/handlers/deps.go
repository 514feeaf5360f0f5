package handlers

import (
	"mobilehut/internal/config"
	"mobilehut/internal/docstore"
	"mobilehut/internal/events"
	"mobilehut/internal/payments"
	"mobilehut/internal/repos"
	"mobilehut/internal/services"
)

type Deps struct {
	Auth *services.AuthService

	AuthHandler     *AuthHandler
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	BookingHandler  *BookingHandler
	PaymentHandler  *PaymentHandler
	UserHandler     *UserHandler
	HealthHandler   *HealthHandler
}

func NewDeps(store docstore.Store, cfg config.Config, provider payments.Provider, pub events.Publisher) *Deps {
	catRepo := repos.NewCategoryRepo(store)
	prodRepo := repos.NewProductRepo(store)
	adRepo := repos.NewAdvertiseRepo(store)
	bookRepo := repos.NewBookingRepo(store)
	payRepo := repos.NewPaymentRepo(store)
	userRepo := repos.NewUserRepo(store)

	authSvc := services.NewAuthService(userRepo, cfg.AccessToken, cfg.TokenTTL)
	catalogSvc := services.NewCatalogService(catRepo, prodRepo, adRepo)
	bookingSvc := services.NewBookingService(bookRepo)
	paymentSvc := services.NewPaymentService(payRepo, bookRepo, prodRepo, provider, pub, cfg.Currency)
	userSvc := services.NewUserService(userRepo)

	return &Deps{
		Auth:            authSvc,
		AuthHandler:     &AuthHandler{Auth: authSvc},
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		BookingHandler:  &BookingHandler{Bookings: bookingSvc},
		PaymentHandler:  &PaymentHandler{Payments: paymentSvc},
		UserHandler:     &UserHandler{Users: userSvc},
		HealthHandler:   &HealthHandler{Store: store},
	}
}
