package domain

// Checkout domain errors.
var (
	ErrCartEmpty          = &Error{Code: EINVALID, Message: "Cart is empty"}
	ErrAddressRequired    = &Error{Code: EINVALID, Message: "Delivery address is required"}
	ErrSubmissionInFlight = &Error{Code: ECONFLICT, Message: "Checkout already in progress"}
)

// CheckoutDraft is the customer's input for one checkout attempt. Only the
// address is mandatory; everything else is attached to the payload when
// non-empty after trimming. TelegramUserID is set only for requests arriving
// from the embedded mini-app host with verified identity.
type CheckoutDraft struct {
	Name           string `json:"name" validate:"omitempty,max=255"`
	Phone          string `json:"phone" validate:"omitempty,max=64"`
	Address        string `json:"address" validate:"required,notblank"`
	DeliveryTime   string `json:"delivery_time" validate:"omitempty,max=255"`
	Comment        string `json:"comment" validate:"omitempty,max=2000"`
	TelegramUserID int64  `json:"-"`
}

// CheckoutItem is a cart line reduced to what the backend needs. Price and
// name are deliberately absent; the backend prices the order itself.
type CheckoutItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CheckoutPayload is the request body for POST /checkout/ on the shop
// backend.
type CheckoutPayload struct {
	TelegramUserID int64          `json:"telegram_user_id,omitempty"`
	CartItems      []CheckoutItem `json:"cart_items"`
	Address        string         `json:"address"`
	DeliveryTime   string         `json:"delivery_time,omitempty"`
	CustomerName   string         `json:"customer_name,omitempty"`
	CustomerPhone  string         `json:"customer_phone,omitempty"`
	Comment        string         `json:"comment,omitempty"`
}

// CheckoutResponse is the shop backend's answer to a checkout submission.
type CheckoutResponse struct {
	OrderID           int64  `json:"order_id"`
	Status            string `json:"status"`
	TotalUZS          int64  `json:"total_uzs"`
	FormattedTotal    string `json:"formatted_total"`
	PaymentLink       string `json:"payment_link"`
	PaymentDeadlineAt string `json:"payment_deadline_at"`
	PaymentID         int64  `json:"payment_id"`
}

// CheckoutReceipt is what the customer sees after a successful submission.
// SnapshotItems and SnapshotTotal were copied before the network call, so
// the receipt stays intact after the live cart is cleared.
type CheckoutReceipt struct {
	OrderID           int64      `json:"order_id"`
	FormattedTotal    string     `json:"formatted_total"`
	PaymentLink       string     `json:"payment_link,omitempty"`
	PaymentDeadlineAt string     `json:"payment_deadline_at,omitempty"`
	SnapshotItems     []LineItem `json:"items"`
	SnapshotTotal     int64      `json:"total"`
}
