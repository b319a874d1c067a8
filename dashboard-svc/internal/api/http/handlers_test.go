package httpapi_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpapi "menuqr-dashboard/dashboard-svc/internal/api/http"
	"menuqr-dashboard/dashboard-svc/internal/domain"
	"menuqr-dashboard/dashboard-svc/internal/mocks"
	"menuqr-dashboard/dashboard-svc/internal/storefront"
	"menuqr-dashboard/dashboard-svc/internal/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type backend struct {
	menu     *mocks.PublicMenu
	orders   *mocks.PublicOrders
	payments *mocks.PublicPayments
	qr       *mocks.QRGenerator
	router   http.Handler
}

func newBackend(t *testing.T) *backend {
	b := &backend{
		menu:     mocks.NewPublicMenu(t),
		orders:   mocks.NewPublicOrders(t),
		payments: mocks.NewPublicPayments(t),
		qr:       mocks.NewQRGenerator(t),
	}
	b.router = httpapi.NewRouter(httpapi.NewHandler(b.menu, b.orders, b.payments, b.qr))
	return b
}

func (b *backend) serve(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestHealthCheck(t *testing.T) {
	b := newBackend(t)

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "https://menuqr.app")
	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "dashboard-svc", body["service"])
}

func TestGetQRCode(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		table     string
		mockError error
		wantCode  int
	}{
		{name: "menu link", path: "/api/storefront/chez-awa/qrcode", wantCode: http.StatusOK},
		{name: "table link", path: "/api/storefront/chez-awa/qrcode?table=12", table: "12", wantCode: http.StatusOK},
		{name: "encoder failure", path: "/api/storefront/chez-awa/qrcode", mockError: errors.New("data too long"), wantCode: http.StatusInternalServerError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			b := newBackend(t)
			if testCase.mockError != nil {
				b.qr.On("Generate", "chez-awa", testCase.table).Return(nil, testCase.mockError).Once()
			} else {
				b.qr.On("Generate", "chez-awa", testCase.table).Return([]byte("\x89PNG"), nil).Once()
			}

			w := b.serve("GET", testCase.path, "")

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
				assert.Equal(t, "\x89PNG", w.Body.String())
			}
		})
	}
}

func TestGetMenu(t *testing.T) {
	tests := []struct {
		name      string
		menu      *domain.PublicMenu
		mockError error
		wantCode  int
		wantError string
	}{
		{
			name:     "found",
			menu:     &domain.PublicMenu{Tenant: domain.Tenant{Name: "Chez Awa", Slug: "chez-awa"}, Categories: []domain.MenuCategory{}},
			wantCode: http.StatusOK,
		},
		{
			name:      "backend 404 relayed",
			mockError: &transport.APIError{StatusCode: http.StatusNotFound, Status: "Not Found", Message: "Restaurant not found"},
			wantCode:  http.StatusNotFound,
			wantError: "Restaurant not found",
		},
		{
			name:      "backend status without message",
			mockError: &transport.APIError{StatusCode: http.StatusServiceUnavailable, Status: "Service Unavailable"},
			wantCode:  http.StatusServiceUnavailable,
			wantError: "Service Unavailable",
		},
		{
			name:      "network failure",
			mockError: errors.New("do request: dial tcp: connection refused"),
			wantCode:  http.StatusBadGateway,
			wantError: "Backend unavailable",
		},
		{
			name:      "empty body",
			wantCode:  http.StatusNotFound,
			wantError: "Menu not found",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			b := newBackend(t)
			b.menu.On("GetPublicMenu", mock.Anything, "chez-awa").Return(testCase.menu, testCase.mockError).Once()

			w := b.serve("GET", "/api/storefront/chez-awa/menu", "")

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantError != "" {
				assert.Equal(t, testCase.wantError, errorMessage(t, w))
			} else {
				var menu domain.PublicMenu
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &menu))
				assert.Equal(t, "Chez Awa", menu.Tenant.Name)
			}
		})
	}
}

func TestCreateOrder(t *testing.T) {
	validBody := `{"customer_name":"Awa","customer_phone":"+227","payment_method":"WAVE","items":[{"item_id":"i2","quantity":2}]}`

	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.PublicOrders)
		wantCode  int
	}{
		{
			name: "placed",
			body: validBody,
			setupMock: func(m *mocks.PublicOrders) {
				m.On("CreatePublicOrder", mock.Anything, "chez-awa", mock.MatchedBy(func(req domain.CreateOrderRequest) bool {
					return req.PaymentMethod == domain.PaymentWave && len(req.Items) == 1 && req.Items[0].Quantity == 2
				})).Return(&domain.Order{ID: "o1", OrderNumber: "CMD-001", Status: domain.OrderPending}, nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(m *mocks.PublicOrders) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing customer",
			body:      `{"payment_method":"CASH","items":[{"item_id":"i2","quantity":1}]}`,
			setupMock: func(m *mocks.PublicOrders) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "no items",
			body:      `{"customer_name":"Awa","customer_phone":"+227","payment_method":"CASH","items":[]}`,
			setupMock: func(m *mocks.PublicOrders) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "item out of stock at backend",
			body: validBody,
			setupMock: func(m *mocks.PublicOrders) {
				m.On("CreatePublicOrder", mock.Anything, "chez-awa", mock.Anything).
					Return(nil, &transport.APIError{StatusCode: http.StatusUnprocessableEntity, Status: "Unprocessable Entity", Message: "Item i2 is out of stock"}).Once()
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "empty backend reply",
			body: validBody,
			setupMock: func(m *mocks.PublicOrders) {
				m.On("CreatePublicOrder", mock.Anything, "chez-awa", mock.Anything).Return(nil, nil).Once()
			},
			wantCode: http.StatusBadGateway,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			b := newBackend(t)
			testCase.setupMock(b.orders)

			w := b.serve("POST", "/api/storefront/chez-awa/orders", testCase.body)
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestPublicRoutesRejectOversizedBodies(t *testing.T) {
	padding := strings.Repeat("x", 128<<10)
	tests := []struct {
		name string
		path string
		body string
	}{
		{
			name: "order",
			path: "/api/storefront/chez-awa/orders",
			body: `{"customer_name":"` + padding + `","customer_phone":"+227","payment_method":"CASH","items":[{"item_id":"i2","quantity":1}]}`,
		},
		{
			name: "manual payment",
			path: "/api/storefront/chez-awa/payments/confirm",
			body: `{"order_number":"CMD-001","method":"WAVE","transaction_id":"` + padding + `","amount":5000}`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			b := newBackend(t)

			w := b.serve("POST", testCase.path, testCase.body)
			assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
			assert.Equal(t, "Request body too large", errorMessage(t, w))
		})
	}
}

func TestGetOrderStatus(t *testing.T) {
	b := newBackend(t)
	b.orders.On("GetPublicOrderStatus", mock.Anything, "chez-awa", "CMD-001").
		Return(&domain.PublicOrderStatus{OrderNumber: "CMD-001", Status: domain.OrderReady}, nil).Once()

	w := b.serve("GET", "/api/storefront/chez-awa/orders/CMD-001/status", "")

	require.Equal(t, http.StatusOK, w.Code)
	var status domain.PublicOrderStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, domain.OrderReady, status.Status)
}

func TestPaymentRoutes(t *testing.T) {
	t.Run("payment info", func(t *testing.T) {
		b := newBackend(t)
		b.payments.On("GetPublicPaymentInfo", mock.Anything, "chez-awa").Return(&domain.PublicPaymentInfo{
			TenantName: "Chez Awa",
			Methods:    []domain.PaymentMethod{domain.PaymentWave},
			Accounts:   map[string]domain.PaymentAccount{"WAVE": {AccountNumber: "+22790000000", AccountName: "Awa Diallo"}},
		}, nil).Once()

		w := b.serve("GET", "/api/storefront/chez-awa/payment-info", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"payment_info"`)
	})

	t.Run("confirm rejects card", func(t *testing.T) {
		b := newBackend(t)
		w := b.serve("POST", "/api/storefront/chez-awa/payments/confirm", `{"order_number":"CMD-001","method":"CARD","transaction_id":"X"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, storefront.ErrNotManualMethod.Error(), errorMessage(t, w))
	})

	t.Run("confirm", func(t *testing.T) {
		b := newBackend(t)
		want := domain.ManualPaymentRequest{OrderNumber: "CMD-001", Method: domain.PaymentWave, TransactionID: "WV-1", Amount: 8000}
		b.payments.On("ConfirmManualPayment", mock.Anything, "chez-awa", want).
			Return(&domain.Payment{ID: "p1", Status: domain.PaymentPending}, nil).Once()

		w := b.serve("POST", "/api/storefront/chez-awa/payments/confirm", `{"order_number":"CMD-001","method":"WAVE","transaction_id":"WV-1","amount":8000}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("status", func(t *testing.T) {
		b := newBackend(t)
		b.payments.On("GetPublicPaymentStatus", mock.Anything, "chez-awa", "WV-1").
			Return(&domain.PublicPaymentStatus{TransactionID: "WV-1", Status: domain.PaymentSuccess}, nil).Once()

		w := b.serve("GET", "/api/storefront/chez-awa/payments/WV-1/status", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
