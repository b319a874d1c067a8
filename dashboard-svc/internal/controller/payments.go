package controller

import (
	"context"
	"fmt"

	"menuqr-dashboard/dashboard-svc/internal/domain"
)

type PaymentsPage struct {
	page
	client PaymentsClient

	payments []domain.Payment
	stats    *domain.PaymentStats
	filters  domain.PaymentFilters
	search   string
}

func NewPaymentsPage(parent context.Context, client PaymentsClient, deps Deps) *PaymentsPage {
	p := &PaymentsPage{client: client}
	p.init(parent, deps)
	return p
}

func (p *PaymentsPage) Load(ctx context.Context) error {
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
	payments, err := p.client.GetPayments(ctx, filters)
	if err != nil {
		return p.fail("Failed to load payments", err)
	}
	stats, err := p.client.GetPaymentStats(ctx, filters)
	if err != nil {
		return p.fail("Failed to load payment statistics", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current(gen) {
		p.payments = payments
		p.stats = stats
	}
	return nil
}

func (p *PaymentsPage) SetFilters(ctx context.Context, filters domain.PaymentFilters) error {
	p.mu.Lock()
	p.filters = filters
	p.mu.Unlock()
	return p.Load(ctx)
}

// SetSearch only narrows Visible; the payments endpoint has no search parameter.
func (p *PaymentsPage) SetSearch(search string) {
	p.mu.Lock()
	p.search = search
	p.mu.Unlock()
}

func (p *PaymentsPage) Filters() domain.PaymentFilters {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filters
}

func (p *PaymentsPage) Payments() []domain.Payment {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Payment(nil), p.payments...)
}

func (p *PaymentsPage) Stats() *domain.PaymentStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

func (p *PaymentsPage) Visible() []domain.Payment {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []domain.Payment
	for _, payment := range p.payments {
		if p.filters.Status != "" && payment.Status != p.filters.Status {
			continue
		}
		if p.filters.Method != "" && payment.Method != p.filters.Method {
			continue
		}
		if !matchesAny(p.search, payment.ID, payment.OrderID, payment.TransactionID, string(payment.Method)) {
			continue
		}
		out = append(out, payment)
	}
	return out
}

// Record registers a payment taken outside the storefront, e.g. cash at the till.
func (p *PaymentsPage) Record(ctx context.Context, req domain.CreatePaymentRequest) (*domain.Payment, error) {
	return p.mutate(ctx, "Failed to record payment", "payment.created", func(ctx context.Context) (*domain.Payment, error) {
		return p.client.CreatePayment(ctx, req)
	})
}

// Refund asks for confirmation first. A zero amount refunds in full.
func (p *PaymentsPage) Refund(ctx context.Context, id string, req domain.RefundRequest) (*domain.Payment, error) {
	prompt := fmt.Sprintf("Refund payment %s?", id)
	if req.Amount > 0 {
		prompt = fmt.Sprintf("Refund %d of payment %s?", req.Amount, id)
	}
	if !p.confirm(ctx, prompt) {
		return nil, ErrNotConfirmed
	}
	return p.mutate(ctx, "Failed to refund payment", "payment.refunded", func(ctx context.Context) (*domain.Payment, error) {
		return p.client.RefundPayment(ctx, id, req)
	})
}

func (p *PaymentsPage) mutate(ctx context.Context, title, action string, call func(context.Context) (*domain.Payment, error)) (*domain.Payment, error) {
	ctx, cancel, err := p.scope(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer p.begin()()

	payment, err := call(ctx)
	if err != nil {
		return nil, p.fail(title, err)
	}
	if payment == nil {
		return nil, p.Load(ctx)
	}
	p.mu.Lock()
	p.payments = PrependByID(p.payments, *payment)
	p.mu.Unlock()
	p.refreshStats(ctx)

	p.success("Payment saved", fmt.Sprintf("Payment %s is %s", payment.ID, payment.Status))
	p.record(ctx, action, "payment", payment.ID)
	return payment, nil
}

func (p *PaymentsPage) refreshStats(ctx context.Context) {
	stats, err := p.client.GetPaymentStats(ctx, p.Filters())
	if err != nil {
		p.fail("Failed to refresh payment statistics", err)
		return
	}
	p.mu.Lock()
	p.stats = stats
	p.mu.Unlock()
}
