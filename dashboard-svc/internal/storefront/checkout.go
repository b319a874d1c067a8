package storefront

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"menuqr-dashboard/dashboard-svc/internal/domain"
	"menuqr-dashboard/dashboard-svc/internal/service"
)

var (
	ErrEmptySlug          = errors.New("restaurant slug is required")
	ErrMissingCustomer    = errors.New("customer name and phone are required")
	ErrInvalidLine        = errors.New("order line needs an item and a positive quantity")
	ErrInvalidMethod      = errors.New("unknown payment method")
	ErrNotManualMethod    = errors.New("payment method does not take a transaction reference")
	ErrMissingReference   = errors.New("transaction reference is required")
	ErrMissingOrderNumber = errors.New("order number is required")
)

type PublicOrders interface {
	CreatePublicOrder(ctx context.Context, slug string, req domain.CreateOrderRequest) (*domain.Order, error)
	GetPublicOrderStatus(ctx context.Context, slug, orderNumber string) (*domain.PublicOrderStatus, error)
}

type PublicPayments interface {
	GetPublicPaymentInfo(ctx context.Context, slug string) (*domain.PublicPaymentInfo, error)
	ConfirmManualPayment(ctx context.Context, slug string, req domain.ManualPaymentRequest) (*domain.Payment, error)
	GetPublicPaymentStatus(ctx context.Context, slug, transactionID string) (*domain.PublicPaymentStatus, error)
}

var (
	_ PublicOrders   = (*service.OrdersService)(nil)
	_ PublicPayments = (*service.PaymentsService)(nil)
)

type Customer struct {
	Name        string
	Phone       string
	Email       string
	TableNumber string
	Notes       string
}

// Checkout takes a visitor from a filled cart to a placed and paid order for
// one restaurant.
type Checkout struct {
	slug     string
	cart     *Cart
	orders   PublicOrders
	payments PublicPayments
}

func NewCheckout(slug string, cart *Cart, orders PublicOrders, payments PublicPayments) (*Checkout, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrEmptySlug
	}
	if cart == nil {
		cart = NewCart()
	}
	return &Checkout{slug: slug, cart: cart, orders: orders, payments: payments}, nil
}

func (c *Checkout) Cart() *Cart {
	return c.cart
}

// PlaceOrder submits the cart. The cart is cleared only once the order exists.
func (c *Checkout) PlaceOrder(ctx context.Context, customer Customer, method domain.PaymentMethod) (*domain.Order, error) {
	req, err := c.orderRequest(customer, method)
	if err != nil {
		return nil, err
	}

	order, err := c.orders.CreatePublicOrder(ctx, c.slug, req)
	if err != nil {
		log.Printf("ERROR: [STOREFRONT] order for %s failed: %v", c.slug, err)
		return nil, fmt.Errorf("place order: %w", err)
	}
	c.cart.Clear()
	if order != nil {
		log.Printf("[STOREFRONT] order %s placed for %s", order.OrderNumber, c.slug)
	}
	return order, nil
}

func (c *Checkout) orderRequest(customer Customer, method domain.PaymentMethod) (domain.CreateOrderRequest, error) {
	req := domain.CreateOrderRequest{
		CustomerName:  strings.TrimSpace(customer.Name),
		CustomerPhone: strings.TrimSpace(customer.Phone),
		CustomerEmail: strings.TrimSpace(customer.Email),
		TableNumber:   strings.TrimSpace(customer.TableNumber),
		PaymentMethod: method,
		Notes:         customer.Notes,
		Items:         c.cart.OrderLines(),
	}
	return req, ValidateOrderRequest(req)
}

// ValidateOrderRequest checks an order before it is sent to the backend.
func ValidateOrderRequest(req domain.CreateOrderRequest) error {
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.CustomerPhone) == "" {
		return ErrMissingCustomer
	}
	if len(req.Items) == 0 {
		return ErrEmptyCart
	}
	for _, line := range req.Items {
		if line.ItemID == "" || line.Quantity < 1 {
			return fmt.Errorf("%w: item %q quantity %d", ErrInvalidLine, line.ItemID, line.Quantity)
		}
	}
	if !req.PaymentMethod.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMethod, req.PaymentMethod)
	}
	return nil
}

// ValidateManualPayment checks a customer's transfer confirmation.
func ValidateManualPayment(req domain.ManualPaymentRequest) error {
	if !req.Method.Manual() {
		return ErrNotManualMethod
	}
	if strings.TrimSpace(req.TransactionID) == "" {
		return ErrMissingReference
	}
	if strings.TrimSpace(req.OrderNumber) == "" {
		return ErrMissingOrderNumber
	}
	return nil
}

// IsValidation reports whether err was produced by one of the validators.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrEmptySlug, ErrEmptyCart, ErrItemUnavailable, ErrMissingCustomer, ErrInvalidLine,
		ErrInvalidMethod, ErrNotManualMethod, ErrMissingReference, ErrMissingOrderNumber,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// PaymentInfo returns the accounts customers pay into for manual methods.
func (c *Checkout) PaymentInfo(ctx context.Context) (*domain.PublicPaymentInfo, error) {
	return c.payments.GetPublicPaymentInfo(ctx, c.slug)
}

// ConfirmPayment reports the reference of a mobile-money transfer the
// customer made for order.
func (c *Checkout) ConfirmPayment(ctx context.Context, order domain.Order, method domain.PaymentMethod, reference, phone string) (*domain.Payment, error) {
	req := domain.ManualPaymentRequest{
		OrderNumber:   order.OrderNumber,
		Method:        method,
		TransactionID: strings.TrimSpace(reference),
		Amount:        order.TotalAmount,
		PhoneNumber:   strings.TrimSpace(phone),
	}
	if err := ValidateManualPayment(req); err != nil {
		return nil, err
	}

	payment, err := c.payments.ConfirmManualPayment(ctx, c.slug, req)
	if err != nil {
		log.Printf("ERROR: [STOREFRONT] payment confirmation for order %s failed: %v", order.OrderNumber, err)
		return nil, fmt.Errorf("confirm payment: %w", err)
	}
	return payment, nil
}

// OrderStatus is polled by the customer while the kitchen works.
func (c *Checkout) OrderStatus(ctx context.Context, orderNumber string) (*domain.PublicOrderStatus, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return nil, ErrMissingOrderNumber
	}
	return c.orders.GetPublicOrderStatus(ctx, c.slug, orderNumber)
}

func (c *Checkout) PaymentStatus(ctx context.Context, transactionID string) (*domain.PublicPaymentStatus, error) {
	if strings.TrimSpace(transactionID) == "" {
		return nil, ErrMissingReference
	}
	return c.payments.GetPublicPaymentStatus(ctx, c.slug, transactionID)
}
