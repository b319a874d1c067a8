package service

import (
	"cmp"
	"context"
	"net/http"
	"net/url"
	"slices"

	"menuqr-dashboard/dashboard-svc/internal/domain"
	"menuqr-dashboard/dashboard-svc/internal/transport"
)

type CategoriesService struct {
	api *transport.Client
}

func NewCategoriesService(client *transport.Client) *CategoriesService {
	return &CategoriesService{api: client}
}

func categoryQuery(f domain.CategoryFilters) url.Values {
	q := transport.Query("search", f.Search)
	transport.SetBool(q, "is_active", f.IsActive)
	return q
}

func (s *CategoriesService) GetCategories(ctx context.Context, filters domain.CategoryFilters) ([]domain.Category, error) {
	return fetchList[domain.Category](ctx, s.api, http.MethodGet, "/menu/categories", categoryQuery(filters), nil)
}

func (s *CategoriesService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return fetchOne[domain.Category](ctx, s.api, http.MethodGet, "/menu/categories"+segment(id), nil, nil)
}

func (s *CategoriesService) CreateCategory(ctx context.Context, req domain.CategoryRequest) (*domain.Category, error) {
	return fetchOne[domain.Category](ctx, s.api, http.MethodPost, "/menu/categories", nil, req)
}

func (s *CategoriesService) UpdateCategory(ctx context.Context, id string, req domain.CategoryRequest) (*domain.Category, error) {
	return fetchOne[domain.Category](ctx, s.api, http.MethodPatch, "/menu/categories"+segment(id), nil, req)
}

func (s *CategoriesService) DeleteCategory(ctx context.Context, id string) error {
	return send(ctx, s.api, http.MethodDelete, "/menu/categories"+segment(id), nil)
}

func (s *CategoriesService) ReorderCategories(ctx context.Context, order []domain.ReorderEntry) ([]domain.Category, error) {
	body := struct {
		Categories []domain.ReorderEntry `json:"categories"`
	}{order}
	return fetchList[domain.Category](ctx, s.api, http.MethodPatch, "/menu/categories/reorder", nil, body)
}

func (s *CategoriesService) GetCategoryStats(ctx context.Context) (*domain.CategoryStats, error) {
	return fetchOne[domain.CategoryStats](ctx, s.api, http.MethodGet, "/menu/categories/stats", nil, nil)
}

var _ CategoriesServiceInterface = (*CategoriesService)(nil)

type ItemsService struct {
	api *transport.Client
}

func NewItemsService(client *transport.Client) *ItemsService {
	return &ItemsService{api: client}
}

func itemQuery(f domain.ItemFilters) url.Values {
	q := transport.Query("category_id", f.CategoryID, "search", f.Search)
	transport.SetBool(q, "is_available", f.IsAvailable)
	return q
}

func (s *ItemsService) GetItems(ctx context.Context, filters domain.ItemFilters) ([]domain.Item, error) {
	return fetchList[domain.Item](ctx, s.api, http.MethodGet, "/menu/items", itemQuery(filters), nil)
}

func (s *ItemsService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return fetchOne[domain.Item](ctx, s.api, http.MethodGet, "/menu/items"+segment(id), nil, nil)
}

func (s *ItemsService) CreateItem(ctx context.Context, req domain.ItemRequest) (*domain.Item, error) {
	return fetchOne[domain.Item](ctx, s.api, http.MethodPost, "/menu/items", nil, req)
}

func (s *ItemsService) UpdateItem(ctx context.Context, id string, req domain.ItemRequest) (*domain.Item, error) {
	return fetchOne[domain.Item](ctx, s.api, http.MethodPatch, "/menu/items"+segment(id), nil, req)
}

func (s *ItemsService) DeleteItem(ctx context.Context, id string) error {
	return send(ctx, s.api, http.MethodDelete, "/menu/items"+segment(id), nil)
}

// ToggleStock flips the out-of-stock flag on the server.
func (s *ItemsService) ToggleStock(ctx context.Context, id string) (*domain.Item, error) {
	return fetchOne[domain.Item](ctx, s.api, http.MethodPatch, "/menu/items"+segment(id)+"/toggle-stock", nil, nil)
}

func (s *ItemsService) SearchItems(ctx context.Context, q string) ([]domain.Item, error) {
	return fetchList[domain.Item](ctx, s.api, http.MethodGet, "/menu/items/search", transport.Query("q", q), nil)
}

func (s *ItemsService) ReorderItems(ctx context.Context, categoryID string, order []domain.ReorderEntry) ([]domain.Item, error) {
	body := struct {
		Items []domain.ReorderEntry `json:"items"`
	}{order}
	return fetchList[domain.Item](ctx, s.api, http.MethodPatch, "/menu/items/category"+segment(categoryID)+"/reorder", nil, body)
}

func (s *ItemsService) GetItemStats(ctx context.Context) (*domain.ItemStats, error) {
	return fetchOne[domain.ItemStats](ctx, s.api, http.MethodGet, "/menu/items/stats", nil, nil)
}

var _ ItemsServiceInterface = (*ItemsService)(nil)

type MenuService struct {
	categories *CategoriesService
	items      *ItemsService
	public     *transport.Client
}

func NewMenuService(client *transport.Client) *MenuService {
	return &MenuService{
		categories: NewCategoriesService(client),
		items:      NewItemsService(client),
		public:     client.Public(),
	}
}

// GetMenu loads categories and items separately and groups the items under
// their category.
func (s *MenuService) GetMenu(ctx context.Context) ([]domain.MenuCategory, error) {
	categories, err := s.categories.GetCategories(ctx, domain.CategoryFilters{})
	if err != nil {
		return nil, err
	}
	items, err := s.items.GetItems(ctx, domain.ItemFilters{})
	if err != nil {
		return nil, err
	}
	return GroupMenu(categories, items), nil
}

func (s *MenuService) GetPublicMenu(ctx context.Context, slug string) (*domain.PublicMenu, error) {
	return fetchOne[domain.PublicMenu](ctx, s.public, http.MethodGet, "/menu/public"+segment(slug), nil, nil)
}

var _ MenuServiceInterface = (*MenuService)(nil)

// GroupMenu attaches items to their category by category_id, both sorted by
// sort order. Items pointing at an unknown category are left out.
func GroupMenu(categories []domain.Category, items []domain.Item) []domain.MenuCategory {
	byCategory := make(map[string][]domain.Item, len(categories))
	for _, item := range items {
		byCategory[item.CategoryID] = append(byCategory[item.CategoryID], item)
	}

	menu := make([]domain.MenuCategory, 0, len(categories))
	for _, category := range categories {
		grouped := byCategory[category.ID]
		if grouped == nil {
			grouped = []domain.Item{}
		}
		slices.SortStableFunc(grouped, func(a, b domain.Item) int { return cmp.Compare(a.SortOrder, b.SortOrder) })
		menu = append(menu, domain.MenuCategory{Category: category, Items: grouped})
	}
	slices.SortStableFunc(menu, func(a, b domain.MenuCategory) int { return cmp.Compare(a.SortOrder, b.SortOrder) })
	return menu
}
