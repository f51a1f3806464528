package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Ibrakam/PartyLand/internal/domain"
	"github.com/Ibrakam/PartyLand/internal/telemetry"
)

// PaymentsBackend is the admin slice of the shop backend.
type PaymentsBackend interface {
	ListPayments(ctx context.Context, status string) ([]domain.AdminPayment, error)
	GetPaymentDetail(ctx context.Context, id int64) (*domain.AdminPaymentDetail, error)
	ApprovePayment(ctx context.Context, id int64) (*domain.AdminPayment, error)
	RejectPayment(ctx context.Context, id int64, reason string) (*domain.AdminPayment, error)
}

// PaymentsService fronts the backend's payment moderation queue for the
// admin console. The backend owns all state transitions; this layer only
// gates input and logs moderation actions.
type PaymentsService struct {
	backend PaymentsBackend
	logger  *slog.Logger
	metrics *telemetry.BusinessMetrics
}

func NewPaymentsService(backend PaymentsBackend, logger *slog.Logger) *PaymentsService {
	return &PaymentsService{backend: backend, logger: logger}
}

// WithMetrics attaches business metric counters.
func (s *PaymentsService) WithMetrics(m *telemetry.BusinessMetrics) *PaymentsService {
	s.metrics = m
	return s
}

// List returns the queue filtered by status. An empty status means all
// payments; anything else must be one of the known review states.
func (s *PaymentsService) List(ctx context.Context, status string) ([]domain.AdminPayment, error) {
	const op = "payments.list"

	switch status {
	case "", domain.PaymentUnderReview, domain.PaymentApproved, domain.PaymentRejected:
	default:
		return nil, domain.Invalid(op, "Unknown payment status filter")
	}
	return s.backend.ListPayments(ctx, status)
}

func (s *PaymentsService) Detail(ctx context.Context, id int64) (*domain.AdminPaymentDetail, error) {
	return s.backend.GetPaymentDetail(ctx, id)
}

func (s *PaymentsService) Approve(ctx context.Context, id int64, reviewer string) (*domain.AdminPayment, error) {
	payment, err := s.backend.ApprovePayment(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.PaymentsApproved.Inc()
	}
	s.logger.InfoContext(ctx, "payment approved",
		slog.Int64("payment_id", id),
		slog.String("reviewer", reviewer))
	return payment, nil
}

// Reject marks a payment rejected. A reason is mandatory so the customer
// always learns why their receipt was refused.
func (s *PaymentsService) Reject(ctx context.Context, id int64, reason, reviewer string) (*domain.AdminPayment, error) {
	const op = "payments.reject"

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.Invalid(op, "Rejection reason is required")
	}

	payment, err := s.backend.RejectPayment(ctx, id, reason)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.PaymentsRejected.Inc()
	}
	s.logger.InfoContext(ctx, "payment rejected",
		slog.Int64("payment_id", id),
		slog.String("reviewer", reviewer))
	return payment, nil
}
