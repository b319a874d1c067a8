package service

import (
	"context"
	"io"

	"menuqr-dashboard/dashboard-svc/internal/domain"
)

type OrdersServiceInterface interface {
	GetOrders(ctx context.Context, filters domain.OrderFilters) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id string, req domain.UpdateOrderRequest) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus, note string) (*domain.Order, error)
	CancelOrder(ctx context.Context, id, reason string) (*domain.Order, error)
	GetOrderStats(ctx context.Context, filters domain.OrderFilters) (*domain.OrderStats, error)
	CreatePublicOrder(ctx context.Context, slug string, req domain.CreateOrderRequest) (*domain.Order, error)
	GetPublicOrderStatus(ctx context.Context, slug, orderNumber string) (*domain.PublicOrderStatus, error)
}

type PaymentsServiceInterface interface {
	GetPayments(ctx context.Context, filters domain.PaymentFilters) ([]domain.Payment, error)
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
	CreatePayment(ctx context.Context, req domain.CreatePaymentRequest) (*domain.Payment, error)
	RefundPayment(ctx context.Context, id string, req domain.RefundRequest) (*domain.Payment, error)
	GetPaymentStats(ctx context.Context, filters domain.PaymentFilters) (*domain.PaymentStats, error)
	GetPaymentConfig(ctx context.Context) (*domain.PaymentConfig, error)
	UpdatePaymentConfig(ctx context.Context, cfg domain.PaymentConfig) (*domain.PaymentConfig, error)
	GetPublicPaymentInfo(ctx context.Context, slug string) (*domain.PublicPaymentInfo, error)
	ConfirmManualPayment(ctx context.Context, slug string, req domain.ManualPaymentRequest) (*domain.Payment, error)
	GetPublicPaymentStatus(ctx context.Context, slug, transactionID string) (*domain.PublicPaymentStatus, error)
}

type CategoriesServiceInterface interface {
	GetCategories(ctx context.Context, filters domain.CategoryFilters) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, req domain.CategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, req domain.CategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ReorderCategories(ctx context.Context, order []domain.ReorderEntry) ([]domain.Category, error)
	GetCategoryStats(ctx context.Context) (*domain.CategoryStats, error)
}

type ItemsServiceInterface interface {
	GetItems(ctx context.Context, filters domain.ItemFilters) ([]domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	CreateItem(ctx context.Context, req domain.ItemRequest) (*domain.Item, error)
	UpdateItem(ctx context.Context, id string, req domain.ItemRequest) (*domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
	ToggleStock(ctx context.Context, id string) (*domain.Item, error)
	SearchItems(ctx context.Context, q string) ([]domain.Item, error)
	ReorderItems(ctx context.Context, categoryID string, order []domain.ReorderEntry) ([]domain.Item, error)
	GetItemStats(ctx context.Context) (*domain.ItemStats, error)
}

type MenuServiceInterface interface {
	GetMenu(ctx context.Context) ([]domain.MenuCategory, error)
	GetPublicMenu(ctx context.Context, slug string) (*domain.PublicMenu, error)
}

type FilesServiceInterface interface {
	Upload(ctx context.Context, file Upload, folder string) (*domain.UploadResult, error)
	Delete(ctx context.Context, fileURL string) error
}

// Upload describes a file picked for upload.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}
