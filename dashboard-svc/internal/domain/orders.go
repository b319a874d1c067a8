package domain

import "time"

type Order struct {
	ID            string        `json:"id"`
	OrderNumber   string        `json:"order_number"`
	TenantID      string        `json:"tenant_id,omitempty"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	CustomerEmail string        `json:"customer_email,omitempty"`
	TableNumber   string        `json:"table_number,omitempty"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status,omitempty"`
	TotalAmount   int64         `json:"total_amount"`
	Items         []OrderItem   `json:"items"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (o Order) Key() string { return o.ID }

type OrderItem struct {
	ItemID       string `json:"item_id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int64  `json:"unit_price"`
	Instructions string `json:"instructions,omitempty"`
}

type OrderFilters struct {
	Status        OrderStatus
	PaymentStatus PaymentStatus
	Search        string
	DateFrom      string
	DateTo        string
	Page          int
	Limit         int
}

type UpdateOrderRequest struct {
	Notes         string        `json:"notes,omitempty"`
	TableNumber   string        `json:"table_number,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status,omitempty"`
}

type OrderStats struct {
	TotalOrders       int            `json:"total_orders"`
	PendingOrders     int            `json:"pending_orders"`
	CompletedOrders   int            `json:"completed_orders"`
	CancelledOrders   int            `json:"cancelled_orders"`
	TotalRevenue      int64          `json:"total_revenue"`
	AverageOrderValue float64        `json:"average_order_value"`
	OrdersByStatus    map[string]int `json:"orders_by_status,omitempty"`
}

type OrderLineRequest struct {
	ItemID       string `json:"item_id"`
	Quantity     int    `json:"quantity"`
	Instructions string `json:"instructions,omitempty"`
}

type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	CustomerEmail string             `json:"customer_email,omitempty"`
	TableNumber   string             `json:"table_number,omitempty"`
	PaymentMethod PaymentMethod      `json:"payment_method"`
	Notes         string             `json:"notes,omitempty"`
	Items         []OrderLineRequest `json:"items"`
}

type PublicOrderStatus struct {
	OrderNumber   string        `json:"order_number"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status,omitempty"`
	TotalAmount   int64         `json:"total_amount"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type Payment struct {
	ID            string        `json:"id"`
	OrderID       string        `json:"order_id"`
	TenantID      string        `json:"tenant_id,omitempty"`
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	Amount        int64         `json:"amount"`
	TransactionID string        `json:"transaction_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (p Payment) Key() string { return p.ID }

type PaymentFilters struct {
	Status   PaymentStatus
	Method   PaymentMethod
	DateFrom string
	DateTo   string
}

type PaymentStats struct {
	TotalPayments      int              `json:"total_payments"`
	SuccessfulPayments int              `json:"successful_payments"`
	FailedPayments     int              `json:"failed_payments"`
	PendingPayments    int              `json:"pending_payments"`
	TotalAmount        int64            `json:"total_amount"`
	RefundedAmount     int64            `json:"refunded_amount"`
	ByMethod           map[string]int64 `json:"by_method"`
}

// ZeroPaymentStats is reported for tenants that have no payment records yet.
func ZeroPaymentStats() *PaymentStats {
	return &PaymentStats{ByMethod: map[string]int64{}}
}

type CreatePaymentRequest struct {
	OrderID       string        `json:"order_id"`
	Method        PaymentMethod `json:"method"`
	Amount        int64         `json:"amount"`
	TransactionID string        `json:"transaction_id,omitempty"`
}

type RefundRequest struct {
	Amount int64  `json:"amount,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type PaymentConfig struct {
	EnabledMethods []PaymentMethod           `json:"enabled_methods"`
	Accounts       map[string]PaymentAccount `json:"accounts,omitempty"`
}

type PublicPaymentInfo struct {
	TenantName string                    `json:"tenant_name"`
	Methods    []PaymentMethod           `json:"methods"`
	Accounts   map[string]PaymentAccount `json:"payment_info"`
}

type ManualPaymentRequest struct {
	OrderNumber   string        `json:"order_number"`
	Method        PaymentMethod `json:"method"`
	TransactionID string        `json:"transaction_id"`
	Amount        int64         `json:"amount"`
	PhoneNumber   string        `json:"phone_number,omitempty"`
}

type PublicPaymentStatus struct {
	TransactionID string        `json:"transaction_id"`
	OrderNumber   string        `json:"order_number,omitempty"`
	Status        PaymentStatus `json:"status"`
}

// Activity is a dashboard mutation worth reporting downstream.
type Activity struct {
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entity_id"`
	TenantID string    `json:"tenant_id,omitempty"`
	UserID   string    `json:"user_id,omitempty"`
	At       time.Time `json:"at"`
}
