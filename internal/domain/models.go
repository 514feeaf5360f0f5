package domain

// Collection names in the document store.
const (
	CategoryCollection  = "category"
	ProductCollection   = "products"
	UserCollection      = "users"
	BookingCollection   = "bookings"
	PaymentCollection   = "payments"
	AdvertiseCollection = "advertise"
)

// Payment holds the references a recorded payment settles. Other body
// fields are stored untouched and not modeled.
type Payment struct {
	BookingID     string `json:"bookingId"`
	ProductID     string `json:"productId"`
	TransactionID string `json:"transactionId"`
}
