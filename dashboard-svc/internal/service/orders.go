package service

import (
	"context"
	"net/http"
	"net/url"

	"menuqr-dashboard/dashboard-svc/internal/domain"
	"menuqr-dashboard/dashboard-svc/internal/transport"
)

type OrdersService struct {
	api    *transport.Client
	public *transport.Client
}

func NewOrdersService(client *transport.Client) *OrdersService {
	return &OrdersService{api: client, public: client.Public()}
}

func orderQuery(f domain.OrderFilters) url.Values {
	q := transport.Query(
		"status", string(f.Status),
		"payment_status", string(f.PaymentStatus),
		"search", f.Search,
		"date_from", f.DateFrom,
		"date_to", f.DateTo,
	)
	transport.SetInt(q, "page", f.Page)
	transport.SetInt(q, "limit", f.Limit)
	return q
}

func (s *OrdersService) GetOrders(ctx context.Context, filters domain.OrderFilters) ([]domain.Order, error) {
	return fetchList[domain.Order](ctx, s.api, http.MethodGet, "/orders", orderQuery(filters), nil)
}

func (s *OrdersService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return fetchOne[domain.Order](ctx, s.api, http.MethodGet, "/orders"+segment(id), nil, nil)
}

func (s *OrdersService) UpdateOrder(ctx context.Context, id string, req domain.UpdateOrderRequest) (*domain.Order, error) {
	return fetchOne[domain.Order](ctx, s.api, http.MethodPatch, "/orders"+segment(id), nil, req)
}

func (s *OrdersService) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus, note string) (*domain.Order, error) {
	body := struct {
		Status domain.OrderStatus `json:"status"`
		Note   string             `json:"note,omitempty"`
	}{status, note}
	return fetchOne[domain.Order](ctx, s.api, http.MethodPatch, "/orders"+segment(id)+"/status", nil, body)
}

func (s *OrdersService) CancelOrder(ctx context.Context, id, reason string) (*domain.Order, error) {
	body := struct {
		Reason string `json:"reason,omitempty"`
	}{reason}
	return fetchOne[domain.Order](ctx, s.api, http.MethodPatch, "/orders"+segment(id)+"/cancel", nil, body)
}

func (s *OrdersService) GetOrderStats(ctx context.Context, filters domain.OrderFilters) (*domain.OrderStats, error) {
	q := transport.Query("date_from", filters.DateFrom, "date_to", filters.DateTo)
	return fetchOne[domain.OrderStats](ctx, s.api, http.MethodGet, "/orders/stats", q, nil)
}

func (s *OrdersService) CreatePublicOrder(ctx context.Context, slug string, req domain.CreateOrderRequest) (*domain.Order, error) {
	return fetchOne[domain.Order](ctx, s.public, http.MethodPost, "/orders/public"+segment(slug), nil, req)
}

func (s *OrdersService) GetPublicOrderStatus(ctx context.Context, slug, orderNumber string) (*domain.PublicOrderStatus, error) {
	path := "/orders/public" + segment(slug) + segment(orderNumber) + "/status"
	return fetchOne[domain.PublicOrderStatus](ctx, s.public, http.MethodGet, path, nil, nil)
}

var _ OrdersServiceInterface = (*OrdersService)(nil)
