package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"mobilehut/internal/docstore"
	"mobilehut/internal/domain"
	"mobilehut/internal/events"
	"mobilehut/internal/payments"
	"mobilehut/internal/repos"
)

type PaymentService struct {
	Payments *repos.PaymentRepo
	Bookings *repos.BookingRepo
	Products *repos.ProductRepo
	Provider payments.Provider
	Events   events.Publisher
	Currency string
}

func NewPaymentService(pay *repos.PaymentRepo, bookings *repos.BookingRepo, products *repos.ProductRepo,
	provider payments.Provider, pub events.Publisher, currency string) *PaymentService {
	return &PaymentService{Payments: pay, Bookings: bookings, Products: products, Provider: provider, Events: pub, Currency: currency}
}

// CreateIntent converts price to minor units and asks for a card-only intent.
// The price is not range checked.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(math.Round(price * 100))
	secret, err := s.Provider.CreateIntent(ctx, payments.Intent{
		Amount:   amount,
		Currency: s.Currency,
		Methods:  []string{payments.MethodCard},
	})
	if err != nil {
		return "", fmt.Errorf("create intent (amount=%d %s): %w", amount, s.Currency, err)
	}
	return secret, nil
}

// ErrBadPayment is reported in the Cascade when the payment references are not strings.
var ErrBadPayment = errors.New("payment references must be strings")

// Cascade reports the follow-up writes of Record. None of its errors fail the
// payment itself.
type Cascade struct {
	BookingID  string
	ProductID  string
	Booking    docstore.UpdateResult
	Product    docstore.UpdateResult
	BookingErr error
	ProductErr error
	PublishErr error
}

// Record stores the payment, then marks the referenced booking and product as
// paid. The three writes are independent: if the booking update fails the
// product update still runs, and nothing is rolled back. Missing ids update
// nothing. References that are not strings are stored with the payment but
// settle nothing; the cascade reports ErrBadPayment.
func (s *PaymentService) Record(ctx context.Context, doc docstore.Document) (docstore.InsertResult, Cascade, error) {
	ack, err := s.Payments.Create(ctx, doc)
	if err != nil {
		return docstore.InsertResult{}, Cascade{}, fmt.Errorf("insert payment: %w", err)
	}

	var p domain.Payment
	if err := docstore.Decode(doc, &p); err != nil {
		err = fmt.Errorf("%w: %v", ErrBadPayment, err)
		return ack, Cascade{BookingErr: err, ProductErr: err}, nil
	}

	cs := Cascade{BookingID: p.BookingID, ProductID: p.ProductID}
	cs.Booking, cs.BookingErr = s.Bookings.MarkPaid(ctx, cs.BookingID, p.TransactionID)
	cs.Product, cs.ProductErr = s.Products.MarkPaid(ctx, cs.ProductID, p.TransactionID)

	if s.Events != nil {
		cs.PublishErr = s.Events.PublishJSON(ctx, events.PaymentRecorded, events.NewEnvelope(events.PaymentRecorded, map[string]any{
			"paymentId":     ack.InsertedID,
			"bookingId":     cs.BookingID,
			"productId":     cs.ProductID,
			"transactionId": p.TransactionID,
		}))
	}
	return ack, cs, nil
}
