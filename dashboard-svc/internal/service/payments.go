package service

import (
	"context"
	"net/http"
	"net/url"

	"menuqr-dashboard/dashboard-svc/internal/domain"
	"menuqr-dashboard/dashboard-svc/internal/transport"
)

type PaymentsService struct {
	api    *transport.Client
	public *transport.Client
}

func NewPaymentsService(client *transport.Client) *PaymentsService {
	return &PaymentsService{api: client, public: client.Public()}
}

func paymentQuery(f domain.PaymentFilters) url.Values {
	return transport.Query(
		"status", string(f.Status),
		"method", string(f.Method),
		"date_from", f.DateFrom,
		"date_to", f.DateTo,
	)
}

// GetPayments reports a tenant without payment records (404) as an empty list.
func (s *PaymentsService) GetPayments(ctx context.Context, filters domain.PaymentFilters) ([]domain.Payment, error) {
	payments, err := fetchList[domain.Payment](ctx, s.api, http.MethodGet, "/payments", paymentQuery(filters), nil)
	if transport.IsNotFound(err) {
		return []domain.Payment{}, nil
	}
	return payments, err
}

func (s *PaymentsService) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	return fetchOne[domain.Payment](ctx, s.api, http.MethodGet, "/payments"+segment(id), nil, nil)
}

func (s *PaymentsService) CreatePayment(ctx context.Context, req domain.CreatePaymentRequest) (*domain.Payment, error) {
	return fetchOne[domain.Payment](ctx, s.api, http.MethodPost, "/payments", nil, req)
}

func (s *PaymentsService) RefundPayment(ctx context.Context, id string, req domain.RefundRequest) (*domain.Payment, error) {
	return fetchOne[domain.Payment](ctx, s.api, http.MethodPost, "/payments"+segment(id)+"/refund", nil, req)
}

// GetPaymentStats reports a tenant without payment records (404) as zeroed stats.
func (s *PaymentsService) GetPaymentStats(ctx context.Context, filters domain.PaymentFilters) (*domain.PaymentStats, error) {
	q := transport.Query("date_from", filters.DateFrom, "date_to", filters.DateTo)
	stats, err := fetchOne[domain.PaymentStats](ctx, s.api, http.MethodGet, "/payments/stats", q, nil)
	if transport.IsNotFound(err) {
		return domain.ZeroPaymentStats(), nil
	}
	return stats, err
}

func (s *PaymentsService) GetPaymentConfig(ctx context.Context) (*domain.PaymentConfig, error) {
	return fetchOne[domain.PaymentConfig](ctx, s.api, http.MethodGet, "/payments/config", nil, nil)
}

func (s *PaymentsService) UpdatePaymentConfig(ctx context.Context, cfg domain.PaymentConfig) (*domain.PaymentConfig, error) {
	return fetchOne[domain.PaymentConfig](ctx, s.api, http.MethodPost, "/payments/config", nil, cfg)
}

func (s *PaymentsService) GetPublicPaymentInfo(ctx context.Context, slug string) (*domain.PublicPaymentInfo, error) {
	return fetchOne[domain.PublicPaymentInfo](ctx, s.public, http.MethodGet, "/payments/public"+segment(slug)+"/payment-info", nil, nil)
}

func (s *PaymentsService) ConfirmManualPayment(ctx context.Context, slug string, req domain.ManualPaymentRequest) (*domain.Payment, error) {
	return fetchOne[domain.Payment](ctx, s.public, http.MethodPost, "/payments/public"+segment(slug)+"/confirm-manual", nil, req)
}

func (s *PaymentsService) GetPublicPaymentStatus(ctx context.Context, slug, transactionID string) (*domain.PublicPaymentStatus, error) {
	path := "/payments/public" + segment(slug) + "/status" + segment(transactionID)
	return fetchOne[domain.PublicPaymentStatus](ctx, s.public, http.MethodGet, path, nil, nil)
}

var _ PaymentsServiceInterface = (*PaymentsService)(nil)
