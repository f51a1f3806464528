package domain

// Payment review statuses used by the admin console queue.
const (
	PaymentUnderReview = "under_review"
	PaymentApproved    = "approved"
	PaymentRejected    = "rejected"
)

// PaymentProof is a receipt image or forwarded message attached to a
// payment by the customer.
type PaymentProof struct {
	ID             int64  `json:"id"`
	Image          string `json:"image,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
	TelegramFileID string `json:"telegram_file_id,omitempty"`
	MessageID      string `json:"message_id,omitempty"`
	SubmittedBy    string `json:"submitted_by,omitempty"`
	SubmittedAt    string `json:"submitted_at"`
	Comment        string `json:"comment,omitempty"`
}

// AdminPayment is one entry in the payment moderation queue.
type AdminPayment struct {
	ID              int64          `json:"id"`
	OrderID         int64          `json:"order_id"`
	OrderStatus     string         `json:"order_status"`
	Status          string         `json:"status"`
	Provider        string         `json:"provider"`
	AmountUZS       int64          `json:"amount_uzs"`
	FormattedAmount string         `json:"formatted_amount"`
	IsActive        bool           `json:"is_active"`
	CreatedAt       string         `json:"created_at"`
	UpdatedAt       string         `json:"updated_at"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	ReviewedBy      string         `json:"reviewed_by,omitempty"`
	ReviewedAt      string         `json:"reviewed_at,omitempty"`
	Proofs          []PaymentProof `json:"proofs"`
}

// AdminOrderItem is a line of the order attached to a payment under review.
type AdminOrderItem struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
	Total    int64 `json:"total"`
	Product  *struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	} `json:"product,omitempty"`
}

// AdminOrderSummary describes the order behind a payment.
type AdminOrderSummary struct {
	ID                int64            `json:"id"`
	Status            string           `json:"status"`
	FormattedTotal    string           `json:"formatted_total"`
	PaymentLink       string           `json:"payment_link,omitempty"`
	PaymentDeadlineAt string           `json:"payment_deadline_at,omitempty"`
	PaymentComment    string           `json:"payment_comment,omitempty"`
	Address           string           `json:"address,omitempty"`
	DeliveryTime      string           `json:"delivery_time,omitempty"`
	CreatedAt         string           `json:"created_at,omitempty"`
	Items             []AdminOrderItem `json:"items"`
}

// AdminPaymentDetail pairs a payment with its order for the detail view.
type AdminPaymentDetail struct {
	Payment AdminPayment      `json:"payment"`
	Order   AdminOrderSummary `json:"order"`
}
