package storefront_test

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"testing"

	"menuqr-dashboard/dashboard-svc/internal/domain"
	"menuqr-dashboard/dashboard-svc/internal/mocks"
	"menuqr-dashboard/dashboard-svc/internal/storefront"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	salad   = domain.Item{ID: "i1", CategoryID: "c1", Name: "Salade", Price: 2500, IsAvailable: true}
	yassa   = domain.Item{ID: "i2", CategoryID: "c2", Name: "Poulet yassa", Price: 4000, IsAvailable: true}
	soldOut = domain.Item{ID: "i3", CategoryID: "c2", Name: "Thiéboudienne", Price: 4500, IsAvailable: true, OutOfStock: true}
)

func TestCart(t *testing.T) {
	cart := storefront.NewCart()
	require.True(t, cart.Empty())

	require.NoError(t, cart.Add(salad, 1))
	require.NoError(t, cart.Add(yassa, 2))
	require.NoError(t, cart.Add(salad, 0))

	assert.Len(t, cart.Lines(), 2)
	assert.Equal(t, 4, cart.Count())
	assert.Equal(t, int64(2*2500+2*4000), cart.Total())

	cart.SetQuantity("i2", 1)
	assert.Equal(t, int64(2*2500+4000), cart.Total())

	cart.SetQuantity("i1", 0)
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "i2", lines[0].ItemID)

	cart.Remove("i2")
	assert.True(t, cart.Empty())
	assert.Equal(t, int64(0), cart.Total())
}

func TestCartRejectsUnorderableItems(t *testing.T) {
	cart := storefront.NewCart()

	assert.ErrorIs(t, cart.Add(soldOut, 1), storefront.ErrItemUnavailable)
	hidden := salad
	hidden.IsAvailable = false
	assert.ErrorIs(t, cart.Add(hidden, 1), storefront.ErrItemUnavailable)
	assert.True(t, cart.Empty())
}

func TestCartOrderLines(t *testing.T) {
	cart := storefront.NewCart()
	require.NoError(t, cart.Add(yassa, 3))
	cart.SetInstructions("i2", "no onions")

	assert.Equal(t, []domain.OrderLineRequest{{ItemID: "i2", Quantity: 3, Instructions: "no onions"}}, cart.OrderLines())
}

func TestNewCheckoutNeedsSlug(t *testing.T) {
	_, err := storefront.NewCheckout("  ", nil, nil, nil)
	assert.ErrorIs(t, err, storefront.ErrEmptySlug)
}

func TestPlaceOrderValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		customer storefront.Customer
		method   domain.PaymentMethod
		fill     bool
		wantErr  error
	}{
		{name: "missing name", customer: storefront.Customer{Phone: "+227"}, method: domain.PaymentCash, fill: true, wantErr: storefront.ErrMissingCustomer},
		{name: "missing phone", customer: storefront.Customer{Name: "Awa", Phone: "   "}, method: domain.PaymentCash, fill: true, wantErr: storefront.ErrMissingCustomer},
		{name: "empty cart", customer: storefront.Customer{Name: "Awa", Phone: "+227"}, method: domain.PaymentCash, wantErr: storefront.ErrEmptyCart},
		{name: "unknown method", customer: storefront.Customer{Name: "Awa", Phone: "+227"}, method: "BITCOIN", fill: true, wantErr: storefront.ErrInvalidMethod},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewPublicOrders(t)
			checkout, err := storefront.NewCheckout("chez-awa", nil, orders, mocks.NewPublicPayments(t))
			require.NoError(t, err)
			if testCase.fill {
				require.NoError(t, checkout.Cart().Add(salad, 1))
			}

			_, err = checkout.PlaceOrder(ctx, testCase.customer, testCase.method)
			assert.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()
	orders := mocks.NewPublicOrders(t)
	checkout, err := storefront.NewCheckout("chez-awa", nil, orders, mocks.NewPublicPayments(t))
	require.NoError(t, err)
	require.NoError(t, checkout.Cart().Add(yassa, 2))

	want := domain.CreateOrderRequest{
		CustomerName:  "Awa",
		CustomerPhone: "+22790000001",
		TableNumber:   "7",
		PaymentMethod: domain.PaymentWave,
		Items:         []domain.OrderLineRequest{{ItemID: "i2", Quantity: 2}},
	}
	placed := &domain.Order{ID: "o1", OrderNumber: "CMD-001", Status: domain.OrderPending, TotalAmount: 8000}
	orders.On("CreatePublicOrder", mock.Anything, "chez-awa", want).Return(placed, nil).Once()

	order, err := checkout.PlaceOrder(ctx, storefront.Customer{Name: " Awa ", Phone: "+22790000001", TableNumber: "7"}, domain.PaymentWave)
	require.NoError(t, err)
	assert.Equal(t, "CMD-001", order.OrderNumber)
	assert.True(t, checkout.Cart().Empty())
}

func TestPlaceOrderFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	orders := mocks.NewPublicOrders(t)
	checkout, err := storefront.NewCheckout("chez-awa", nil, orders, mocks.NewPublicPayments(t))
	require.NoError(t, err)
	require.NoError(t, checkout.Cart().Add(salad, 1))

	backendErr := errors.New("HTTP error! status: 500 Internal Server Error")
	orders.On("CreatePublicOrder", mock.Anything, "chez-awa", mock.Anything).Return(nil, backendErr).Once()

	_, err = checkout.PlaceOrder(ctx, storefront.Customer{Name: "Awa", Phone: "+227"}, domain.PaymentCash)
	assert.ErrorIs(t, err, backendErr)
	assert.Equal(t, 1, checkout.Cart().Count())
}

func TestConfirmPayment(t *testing.T) {
	ctx := context.Background()
	order := domain.Order{OrderNumber: "CMD-001", TotalAmount: 8000}

	t.Run("validation", func(t *testing.T) {
		checkout, err := storefront.NewCheckout("chez-awa", nil, mocks.NewPublicOrders(t), mocks.NewPublicPayments(t))
		require.NoError(t, err)

		_, err = checkout.ConfirmPayment(ctx, order, domain.PaymentCash, "REF", "")
		assert.ErrorIs(t, err, storefront.ErrNotManualMethod)
		_, err = checkout.ConfirmPayment(ctx, order, domain.PaymentWave, "  ", "")
		assert.ErrorIs(t, err, storefront.ErrMissingReference)
		_, err = checkout.ConfirmPayment(ctx, domain.Order{}, domain.PaymentWave, "REF", "")
		assert.ErrorIs(t, err, storefront.ErrMissingOrderNumber)
	})

	t.Run("sends reference and amount", func(t *testing.T) {
		payments := mocks.NewPublicPayments(t)
		checkout, err := storefront.NewCheckout("chez-awa", nil, mocks.NewPublicOrders(t), payments)
		require.NoError(t, err)

		req := domain.ManualPaymentRequest{
			OrderNumber:   "CMD-001",
			Method:        domain.PaymentOrangeMoney,
			TransactionID: "OM-55821",
			Amount:        8000,
			PhoneNumber:   "+22790000001",
		}
		payments.On("ConfirmManualPayment", mock.Anything, "chez-awa", req).
			Return(&domain.Payment{ID: "p1", Status: domain.PaymentPending, TransactionID: "OM-55821"}, nil).Once()

		payment, err := checkout.ConfirmPayment(ctx, order, domain.PaymentOrangeMoney, " OM-55821 ", "+22790000001")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentPending, payment.Status)
	})
}

func TestCheckoutStatusPolling(t *testing.T) {
	ctx := context.Background()
	orders := mocks.NewPublicOrders(t)
	payments := mocks.NewPublicPayments(t)
	checkout, err := storefront.NewCheckout("chez-awa", nil, orders, payments)
	require.NoError(t, err)

	orders.On("GetPublicOrderStatus", mock.Anything, "chez-awa", "CMD-001").
		Return(&domain.PublicOrderStatus{OrderNumber: "CMD-001", Status: domain.OrderReady}, nil).Once()
	payments.On("GetPublicPaymentStatus", mock.Anything, "chez-awa", "OM-55821").
		Return(&domain.PublicPaymentStatus{TransactionID: "OM-55821", Status: domain.PaymentSuccess}, nil).Once()
	payments.On("GetPublicPaymentInfo", mock.Anything, "chez-awa").
		Return(&domain.PublicPaymentInfo{TenantName: "Chez Awa", Methods: []domain.PaymentMethod{domain.PaymentWave}}, nil).Once()

	status, err := checkout.OrderStatus(ctx, "CMD-001")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderReady, status.Status)

	paymentStatus, err := checkout.PaymentStatus(ctx, "OM-55821")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentSuccess, paymentStatus.Status)

	info, err := checkout.PaymentInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Chez Awa", info.TenantName)

	_, err = checkout.OrderStatus(ctx, "")
	assert.ErrorIs(t, err, storefront.ErrMissingOrderNumber)
}

func TestDefaultQRGenerator(t *testing.T) {
	gen := storefront.DefaultQRGenerator{BaseURL: "https://menuqr.app/", Size: 128}

	assert.Equal(t, "https://menuqr.app/menu/chez-awa", gen.MenuURL("chez-awa", ""))
	assert.Equal(t, "https://menuqr.app/menu/chez-awa?table=12", gen.MenuURL("chez-awa", "12"))
	assert.Equal(t, "https://menuqr.app/menu/chez%20awa?table=A+1", gen.MenuURL("chez awa", "A 1"))

	qr, err := gen.Generate("chez-awa", "12")
	require.NoError(t, err)
	cfg, err := png.DecodeConfig(bytes.NewReader(qr))
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Width)

	_, err = gen.Generate("", "")
	assert.ErrorIs(t, err, storefront.ErrEmptySlug)
}

func TestValidateOrderRequest(t *testing.T) {
	valid := domain.CreateOrderRequest{
		CustomerName:  "Awa",
		CustomerPhone: "+227",
		PaymentMethod: domain.PaymentCash,
		Items:         []domain.OrderLineRequest{{ItemID: "i1", Quantity: 1}},
	}

	tests := []struct {
		name    string
		mutate  func(*domain.CreateOrderRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(*domain.CreateOrderRequest) {}},
		{name: "no items", mutate: func(r *domain.CreateOrderRequest) { r.Items = nil }, wantErr: storefront.ErrEmptyCart},
		{name: "zero quantity", mutate: func(r *domain.CreateOrderRequest) { r.Items[0].Quantity = 0 }, wantErr: storefront.ErrInvalidLine},
		{name: "no item id", mutate: func(r *domain.CreateOrderRequest) { r.Items[0].ItemID = "" }, wantErr: storefront.ErrInvalidLine},
		{name: "no method", mutate: func(r *domain.CreateOrderRequest) { r.PaymentMethod = "" }, wantErr: storefront.ErrInvalidMethod},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := valid
			req.Items = append([]domain.OrderLineRequest(nil), valid.Items...)
			testCase.mutate(&req)

			err := storefront.ValidateOrderRequest(req)
			if testCase.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, testCase.wantErr)
			assert.True(t, storefront.IsValidation(err))
		})
	}
}

func TestIsValidation(t *testing.T) {
	assert.True(t, storefront.IsValidation(storefront.ErrMissingReference))
	assert.False(t, storefront.IsValidation(errors.New("HTTP error! status: 500")))
	assert.False(t, storefront.IsValidation(nil))
}
