package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Ibrakam/PartyLand/internal/domain"
	"github.com/Ibrakam/PartyLand/internal/i18n"
	"github.com/Ibrakam/PartyLand/internal/telemetry"
)

// CheckoutSubmitter posts an assembled order to the shop backend.
type CheckoutSubmitter interface {
	CreateCheckout(ctx context.Context, payload domain.CheckoutPayload) (*domain.CheckoutResponse, error)
}

// OrderPublisher announces accepted orders to interested consumers. Publish
// failures never affect the checkout outcome.
type OrderPublisher interface {
	OrderAccepted(ctx context.Context, receipt *domain.CheckoutReceipt)
}

// CheckoutService turns a cart plus a customer draft into a backend order.
// One submission per cart token may be in flight at a time; the cart is
// cleared only after the backend has accepted the order.
type CheckoutService struct {
	cart      domain.CartService
	submitter CheckoutSubmitter
	publisher OrderPublisher
	validate  *validator.Validate
	logger    *slog.Logger
	metrics   *telemetry.BusinessMetrics

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewCheckoutService(cart domain.CartService, submitter CheckoutSubmitter, publisher OrderPublisher, logger *slog.Logger) *CheckoutService {
	v := validator.New(validator.WithRequiredStructEnabled())
	// "required" alone accepts whitespace; addresses must carry content.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &CheckoutService{
		cart:      cart,
		submitter: submitter,
		publisher: publisher,
		validate:  v,
		logger:    logger,
		inFlight:  make(map[string]bool),
	}
}

// WithMetrics attaches business metric counters.
func (s *CheckoutService) WithMetrics(m *telemetry.BusinessMetrics) *CheckoutService {
	s.metrics = m
	return s
}

// Submit runs one checkout attempt for a cart token.
//
// The cart snapshot is taken before the network call, so the receipt shows
// exactly what was ordered even though the live cart is cleared afterwards.
// Any failure before or during submission leaves the cart and the draft
// untouched for a retry.
func (s *CheckoutService) Submit(ctx context.Context, token string, draft domain.CheckoutDraft) (*domain.CheckoutReceipt, error) {
	const op = "checkout.submit"

	if !s.begin(token) {
		return nil, domain.ErrSubmissionInFlight
	}
	defer s.end(token)

	if err := s.validate.Struct(draft); err != nil {
		// The only required field is the address; everything else is
		// length-capped optional text.
		if hasFieldError(err, "Address") {
			return nil, domain.ErrAddressRequired
		}
		return nil, domain.Invalid(op, "Checkout details are invalid")
	}

	summary, err := s.cart.Summary(ctx, token)
	if err != nil {
		return nil, err
	}
	if len(summary.Items) == 0 {
		return nil, domain.ErrCartEmpty
	}

	snapshot := summary.Snapshot()
	snapshotTotal := summary.TotalPrice

	resp, err := s.submitter.CreateCheckout(ctx, buildPayload(summary, draft))
	if err != nil {
		if s.metrics != nil {
			s.metrics.CheckoutAttempts.WithLabelValues("rejected").Inc()
		}
		s.logger.WarnContext(ctx, "checkout submission failed",
			slog.Int("items", len(snapshot)),
			slog.Any("error", err))
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.CheckoutAttempts.WithLabelValues("accepted").Inc()
		s.metrics.OrdersAccepted.Inc()
		s.metrics.OrderValue.Observe(float64(snapshotTotal))
		s.metrics.OrderItemCount.Observe(float64(len(snapshot)))
	}

	formattedTotal := resp.FormattedTotal
	if formattedTotal == "" {
		formattedTotal = i18n.FormatUZS(snapshotTotal)
	}

	receipt := &domain.CheckoutReceipt{
		OrderID:           resp.OrderID,
		FormattedTotal:    formattedTotal,
		PaymentLink:       resp.PaymentLink,
		PaymentDeadlineAt: resp.PaymentDeadlineAt,
		SnapshotItems:     snapshot,
		SnapshotTotal:     snapshotTotal,
	}

	if err := s.cart.Clear(ctx, token); err != nil {
		// The order exists; a stale cart is the lesser problem. The customer
		// can clear it manually.
		s.logger.ErrorContext(ctx, "failed to clear cart after checkout",
			slog.Int64("order_id", resp.OrderID),
			slog.Any("error", err))
	}

	s.logger.InfoContext(ctx, "checkout accepted",
		slog.Int64("order_id", resp.OrderID),
		slog.Int64("payment_id", resp.PaymentID),
		slog.Int("items", len(snapshot)))

	if s.publisher != nil {
		s.publisher.OrderAccepted(ctx, receipt)
	}

	return receipt, nil
}

func (s *CheckoutService) begin(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[token] {
		return false
	}
	s.inFlight[token] = true
	return true
}

func (s *CheckoutService) end(token string) {
	s.mu.Lock()
	delete(s.inFlight, token)
	s.mu.Unlock()
}

// buildPayload assembles the backend request. Optional fields are trimmed
// and dropped when empty so the body carries only what the customer filled.
func buildPayload(summary *domain.CartSummary, draft domain.CheckoutDraft) domain.CheckoutPayload {
	items := make([]domain.CheckoutItem, 0, len(summary.Items))
	for _, li := range summary.Items {
		items = append(items, domain.CheckoutItem{ProductID: li.ProductID, Quantity: li.Quantity})
	}

	return domain.CheckoutPayload{
		TelegramUserID: draft.TelegramUserID,
		CartItems:      items,
		Address:        strings.TrimSpace(draft.Address),
		DeliveryTime:   strings.TrimSpace(draft.DeliveryTime),
		CustomerName:   strings.TrimSpace(draft.Name),
		CustomerPhone:  strings.TrimSpace(draft.Phone),
		Comment:        strings.TrimSpace(draft.Comment),
	}
}

func hasFieldError(err error, field string) bool {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	for _, fe := range errs {
		if fe.Field() == field {
			return true
		}
	}
	return false
}
