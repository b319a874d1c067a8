package controller

import (
	"context"
	"errors"
	"fmt"

	"menuqr-dashboard/dashboard-svc/internal/domain"
)

var ErrInvalidStatus = errors.New("invalid order status")

// OrdersPage holds the order list, its statistics and the active filters.
type OrdersPage struct {
	page
	client OrdersClient

	orders  []domain.Order
	stats   *domain.OrderStats
	filters domain.OrderFilters
}

func NewOrdersPage(parent context.Context, client OrdersClient, deps Deps) *OrdersPage {
	p := &OrdersPage{client: client}
	p.init(parent, deps)
	return p
}

// Load fetches the list and statistics for the current filters. Without a
// signed-in user it does nothing.
func (p *OrdersPage) Load(ctx context.Context) error {
	if p.user() == nil {
		return nil
	}
	ctx, cancel, err := p.scope(ctx)
	if err != nil {
		return err
	}
	defer cancel()
	defer p.begin()()

	gen := p.nextGen()
	filters := p.Filters()

	orders, err := p.client.GetOrders(ctx, filters)
	if err != nil {
		return p.fail("Failed to load orders", err)
	}
	stats, err := p.client.GetOrderStats(ctx, filters)
	if err != nil {
		return p.fail("Failed to load order statistics", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current(gen) {
		p.orders = orders
		p.stats = stats
	}
	return nil
}

func (p *OrdersPage) SetFilters(ctx context.Context, filters domain.OrderFilters) error {
	p.mu.Lock()
	p.filters = filters
	p.mu.Unlock()
	return p.Load(ctx)
}

func (p *OrdersPage) Filters() domain.OrderFilters {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filters
}

func (p *OrdersPage) Orders() []domain.Order {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Order(nil), p.orders...)
}

func (p *OrdersPage) Stats() *domain.OrderStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// Visible narrows the last fetched list by the active status and search text.
func (p *OrdersPage) Visible() []domain.Order {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []domain.Order
	for _, order := range p.orders {
		if p.filters.Status != "" && order.Status != p.filters.Status {
			continue
		}
		if !matchesAny(p.filters.Search, order.OrderNumber, order.CustomerName, order.CustomerPhone, order.CustomerEmail) {
			continue
		}
		out = append(out, order)
	}
	return out
}

func (p *OrdersPage) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, note string) (*domain.Order, error) {
	if !status.Valid() {
		return nil, p.fail("Failed to update order", fmt.Errorf("%w: %q", ErrInvalidStatus, status))
	}
	return p.mutate(ctx, "Failed to update order", func(ctx context.Context) (*domain.Order, error) {
		return p.client.UpdateOrderStatus(ctx, id, status, note)
	}, "order.status."+string(status), id)
}

func (p *OrdersPage) Update(ctx context.Context, id string, req domain.UpdateOrderRequest) (*domain.Order, error) {
	return p.mutate(ctx, "Failed to update order", func(ctx context.Context) (*domain.Order, error) {
		return p.client.UpdateOrder(ctx, id, req)
	}, "order.updated", id)
}

// Cancel asks for confirmation before cancelling the order.
func (p *OrdersPage) Cancel(ctx context.Context, id, reason string) (*domain.Order, error) {
	if !p.confirm(ctx, fmt.Sprintf("Cancel order %s?", p.orderNumber(id))) {
		return nil, ErrNotConfirmed
	}
	return p.mutate(ctx, "Failed to cancel order", func(ctx context.Context) (*domain.Order, error) {
		return p.client.CancelOrder(ctx, id, reason)
	}, "order.cancelled", id)
}

func (p *OrdersPage) mutate(ctx context.Context, title string, call func(context.Context) (*domain.Order, error), action, id string) (*domain.Order, error) {
	ctx, cancel, err := p.scope(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer p.begin()()

	order, err := call(ctx)
	if err != nil {
		return nil, p.fail(title, err)
	}
	if order == nil {
		// Nothing to merge; take the list from the server instead.
		if err := p.Load(ctx); err != nil {
			return nil, err
		}
	} else {
		p.mu.Lock()
		p.orders = PrependByID(p.orders, *order)
		p.mu.Unlock()
		p.refreshStats(ctx)
	}

	p.success("Order updated", fmt.Sprintf("Order %s saved", p.orderNumber(id)))
	p.record(ctx, action, "order", id)
	return order, nil
}

func (p *OrdersPage) refreshStats(ctx context.Context) {
	stats, err := p.client.GetOrderStats(ctx, p.Filters())
	if err != nil {
		p.fail("Failed to refresh order statistics", err)
		return
	}
	p.mu.Lock()
	p.stats = stats
	p.mu.Unlock()
}

func (p *OrdersPage) orderNumber(id string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, order := range p.orders {
		if order.ID == id && order.OrderNumber != "" {
			return order.OrderNumber
		}
	}
	return id
}
