package domain

import "time"

type Category struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c Category) Key() string { return c.ID }

type CategoryRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	SortOrder   *int   `json:"sort_order,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

type CategoryFilters struct {
	Search   string
	IsActive *bool
}

type CategoryStats struct {
	TotalCategories    int `json:"total_categories"`
	ActiveCategories   int `json:"active_categories"`
	InactiveCategories int `json:"inactive_categories"`
}

type Item struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id,omitempty"`
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsAvailable bool      `json:"is_available"`
	OutOfStock  bool      `json:"out_of_stock"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (i Item) Key() string { return i.ID }

// Orderable reports whether a customer can put the item in a cart.
func (i Item) Orderable() bool {
	return i.IsAvailable && !i.OutOfStock
}

type ItemRequest struct {
	CategoryID  string `json:"category_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Price       *int64 `json:"price,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	IsAvailable *bool  `json:"is_available,omitempty"`
	SortOrder   *int   `json:"sort_order,omitempty"`
}

type ItemFilters struct {
	CategoryID  string
	Search      string
	IsAvailable *bool
}

type ItemStats struct {
	TotalItems      int            `json:"total_items"`
	AvailableItems  int            `json:"available_items"`
	OutOfStockItems int            `json:"out_of_stock_items"`
	AveragePrice    float64        `json:"average_price"`
	ItemsByCategory map[string]int `json:"items_by_category,omitempty"`
}

type ReorderEntry struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sort_order"`
}

// MenuCategory is a category together with the items that reference it.
type MenuCategory struct {
	Category
	Items []Item `json:"items"`
}

type PublicMenu struct {
	Tenant     Tenant         `json:"tenant"`
	Categories []MenuCategory `json:"categories"`
}

type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
	Size     int64  `json:"size,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
}
