package controller

import (
	"context"

	"menuqr-dashboard/dashboard-svc/internal/domain"
)

const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// Toast is a short user-facing notification.
type Toast struct {
	Title   string
	Message string
	Variant string
}

type Notifier interface {
	Notify(toast Toast)
}

// Confirmer asks the user before a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type ActivityRecorder interface {
	Record(ctx context.Context, activity domain.Activity) error
}

type Session interface {
	CurrentUser() *domain.User
}

type OrdersClient interface {
	GetOrders(ctx context.Context, filters domain.OrderFilters) ([]domain.Order, error)
	GetOrderStats(ctx context.Context, filters domain.OrderFilters) (*domain.OrderStats, error)
	UpdateOrder(ctx context.Context, id string, req domain.UpdateOrderRequest) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus, note string) (*domain.Order, error)
	CancelOrder(ctx context.Context, id, reason string) (*domain.Order, error)
}

type CategoriesClient interface {
	GetCategories(ctx context.Context, filters domain.CategoryFilters) ([]domain.Category, error)
	CreateCategory(ctx context.Context, req domain.CategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, req domain.CategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ReorderCategories(ctx context.Context, order []domain.ReorderEntry) ([]domain.Category, error)
}

type ItemsClient interface {
	GetItems(ctx context.Context, filters domain.ItemFilters) ([]domain.Item, error)
	SearchItems(ctx context.Context, q string) ([]domain.Item, error)
	CreateItem(ctx context.Context, req domain.ItemRequest) (*domain.Item, error)
	UpdateItem(ctx context.Context, id string, req domain.ItemRequest) (*domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
	ToggleStock(ctx context.Context, id string) (*domain.Item, error)
	GetItemStats(ctx context.Context) (*domain.ItemStats, error)
}

type PaymentsClient interface {
	GetPayments(ctx context.Context, filters domain.PaymentFilters) ([]domain.Payment, error)
	GetPaymentStats(ctx context.Context, filters domain.PaymentFilters) (*domain.PaymentStats, error)
	CreatePayment(ctx context.Context, req domain.CreatePaymentRequest) (*domain.Payment, error)
	RefundPayment(ctx context.Context, id string, req domain.RefundRequest) (*domain.Payment, error)
}

// Deps are the collaborators every page shares. Recorder may be nil.
type Deps struct {
	Session   Session
	Notifier  Notifier
	Confirmer Confirmer
	Recorder  ActivityRecorder
}
