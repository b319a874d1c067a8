package controller

import (
	"context"
	"fmt"
	"sort"

	"menuqr-dashboard/dashboard-svc/internal/domain"
	"menuqr-dashboard/dashboard-svc/internal/service"
)

// MenuPage manages categories and items of the signed-in tenant.
type MenuPage struct {
	page
	categories CategoriesClient
	items      ItemsClient

	categoryList []domain.Category
	itemList     []domain.Item
	stats        *domain.ItemStats
	filters      domain.ItemFilters
}

func NewMenuPage(parent context.Context, categories CategoriesClient, items ItemsClient, deps Deps) *MenuPage {
	p := &MenuPage{categories: categories, items: items}
	p.init(parent, deps)
	return p
}

func (p *MenuPage) Load(ctx context.Context) error {
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
	categories, err := p.categories.GetCategories(ctx, domain.CategoryFilters{})
	if err != nil {
		return p.fail("Failed to load categories", err)
	}
	items, err := p.fetchItems(ctx, p.Filters())
	if err != nil {
		return p.fail("Failed to load items", err)
	}
	stats, err := p.items.GetItemStats(ctx)
	if err != nil {
		return p.fail("Failed to load menu statistics", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current(gen) {
		p.categoryList = categories
		p.itemList = items
		p.stats = stats
	}
	return nil
}

// fetchItems uses the search endpoint when there is search text, which does
// not take a category, so the category is applied locally.
func (p *MenuPage) fetchItems(ctx context.Context, filters domain.ItemFilters) ([]domain.Item, error) {
	if filters.Search == "" {
		return p.items.GetItems(ctx, filters)
	}
	found, err := p.items.SearchItems(ctx, filters.Search)
	if err != nil || filters.CategoryID == "" {
		return found, err
	}
	out := make([]domain.Item, 0, len(found))
	for _, item := range found {
		if item.CategoryID == filters.CategoryID {
			out = append(out, item)
		}
	}
	return out, nil
}

// reloadItems refetches only the item list after a filter change.
func (p *MenuPage) reloadItems(ctx context.Context) error {
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
	items, err := p.fetchItems(ctx, p.Filters())
	if err != nil {
		return p.fail("Failed to load items", err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current(gen) {
		p.itemList = items
	}
	return nil
}

func (p *MenuPage) SetSearch(ctx context.Context, search string) error {
	p.mu.Lock()
	p.filters.Search = search
	p.mu.Unlock()
	return p.reloadItems(ctx)
}

// SelectCategory narrows items to one category. An empty id shows all.
func (p *MenuPage) SelectCategory(ctx context.Context, categoryID string) error {
	p.mu.Lock()
	p.filters.CategoryID = categoryID
	p.mu.Unlock()
	return p.reloadItems(ctx)
}

func (p *MenuPage) Filters() domain.ItemFilters {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filters
}

func (p *MenuPage) Categories() []domain.Category {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Category(nil), p.categoryList...)
}

func (p *MenuPage) Items() []domain.Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Item(nil), p.itemList...)
}

func (p *MenuPage) Stats() *domain.ItemStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

func (p *MenuPage) Visible() []domain.Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []domain.Item
	for _, item := range p.itemList {
		if p.filters.CategoryID != "" && item.CategoryID != p.filters.CategoryID {
			continue
		}
		if !matchesAny(p.filters.Search, item.Name, item.Description) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Grouped is the menu as customers see it, built from the loaded lists.
func (p *MenuPage) Grouped() []domain.MenuCategory {
	p.mu.Lock()
	defer p.mu.Unlock()
	return service.GroupMenu(p.categoryList, p.itemList)
}

func (p *MenuPage) CreateCategory(ctx context.Context, req domain.CategoryRequest) (*domain.Category, error) {
	return p.saveCategory(ctx, "Failed to create category", "category.created", func(ctx context.Context) (*domain.Category, error) {
		return p.categories.CreateCategory(ctx, req)
	})
}

func (p *MenuPage) UpdateCategory(ctx context.Context, id string, req domain.CategoryRequest) (*domain.Category, error) {
	return p.saveCategory(ctx, "Failed to update category", "category.updated", func(ctx context.Context) (*domain.Category, error) {
		return p.categories.UpdateCategory(ctx, id, req)
	})
}

func (p *MenuPage) saveCategory(ctx context.Context, title, action string, call func(context.Context) (*domain.Category, error)) (*domain.Category, error) {
	ctx, cancel, err := p.scope(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer p.begin()()

	category, err := call(ctx)
	if err != nil {
		return nil, p.fail(title, err)
	}
	if category == nil {
		return nil, p.Load(ctx)
	}
	p.mu.Lock()
	p.categoryList = MergeByID(p.categoryList, *category)
	p.mu.Unlock()
	p.refreshStats(ctx)

	p.success("Category saved", fmt.Sprintf("%s saved", category.Name))
	p.record(ctx, action, "category", category.ID)
	return category, nil
}

// DeleteCategory asks for confirmation, then drops the category and its items.
func (p *MenuPage) DeleteCategory(ctx context.Context, id string) error {
	if !p.confirm(ctx, fmt.Sprintf("Delete category %s and its items?", p.categoryName(id))) {
		return ErrNotConfirmed
	}
	ctx, cancel, err := p.scope(ctx)
	if err != nil {
		return err
	}
	defer cancel()
	defer p.begin()()

	if err := p.categories.DeleteCategory(ctx, id); err != nil {
		return p.fail("Failed to delete category", err)
	}
	p.mu.Lock()
	p.categoryList = RemoveByID(p.categoryList, id)
	items := p.itemList[:0:0]
	for _, item := range p.itemList {
		if item.CategoryID != id {
			items = append(items, item)
		}
	}
	p.itemList = items
	if p.filters.CategoryID == id {
		p.filters.CategoryID = ""
	}
	p.mu.Unlock()
	p.refreshStats(ctx)

	p.success("Category deleted", "")
	p.record(ctx, "category.deleted", "category", id)
	return nil
}

// ReorderCategories stores the given id order as sort positions 0..n-1.
func (p *MenuPage) ReorderCategories(ctx context.Context, ids []string) error {
	ctx, cancel, err := p.scope(ctx)
	if err != nil {
		return err
	}
	defer cancel()
	defer p.begin()()

	entries := make([]domain.ReorderEntry, len(ids))
	position := make(map[string]int, len(ids))
	for i, id := range ids {
		entries[i] = domain.ReorderEntry{ID: id, SortOrder: i}
		position[id] = i
	}
	updated, err := p.categories.ReorderCategories(ctx, entries)
	if err != nil {
		return p.fail("Failed to reorder categories", err)
	}

	p.mu.Lock()
	if len(updated) > 0 {
		p.categoryList = updated
	} else {
		list := append([]domain.Category(nil), p.categoryList...)
		for i := range list {
			if pos, ok := position[list[i].ID]; ok {
				list[i].SortOrder = pos
			}
		}
		sort.SliceStable(list, func(a, b int) bool { return list[a].SortOrder < list[b].SortOrder })
		p.categoryList = list
	}
	p.mu.Unlock()

	p.success("Categories reordered", "")
	p.record(ctx, "category.reordered", "category", "")
	return nil
}

func (p *MenuPage) CreateItem(ctx context.Context, req domain.ItemRequest) (*domain.Item, error) {
	return p.saveItem(ctx, "Failed to create item", "item.created", func(ctx context.Context) (*domain.Item, error) {
		return p.items.CreateItem(ctx, req)
	})
}

func (p *MenuPage) UpdateItem(ctx context.Context, id string, req domain.ItemRequest) (*domain.Item, error) {
	return p.saveItem(ctx, "Failed to update item", "item.updated", func(ctx context.Context) (*domain.Item, error) {
		return p.items.UpdateItem(ctx, id, req)
	})
}

func (p *MenuPage) ToggleStock(ctx context.Context, id string) (*domain.Item, error) {
	return p.saveItem(ctx, "Failed to update stock", "item.stock_toggled", func(ctx context.Context) (*domain.Item, error) {
		return p.items.ToggleStock(ctx, id)
	})
}

func (p *MenuPage) saveItem(ctx context.Context, title, action string, call func(context.Context) (*domain.Item, error)) (*domain.Item, error) {
	ctx, cancel, err := p.scope(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer p.begin()()

	item, err := call(ctx)
	if err != nil {
		return nil, p.fail(title, err)
	}
	if item == nil {
		return nil, p.Load(ctx)
	}
	p.mu.Lock()
	p.itemList = MergeByID(p.itemList, *item)
	p.mu.Unlock()
	p.refreshStats(ctx)

	p.success("Item saved", fmt.Sprintf("%s saved", item.Name))
	p.record(ctx, action, "item", item.ID)
	return item, nil
}

func (p *MenuPage) DeleteItem(ctx context.Context, id string) error {
	if !p.confirm(ctx, fmt.Sprintf("Delete item %s?", p.itemName(id))) {
		return ErrNotConfirmed
	}
	ctx, cancel, err := p.scope(ctx)
	if err != nil {
		return err
	}
	defer cancel()
	defer p.begin()()

	if err := p.items.DeleteItem(ctx, id); err != nil {
		return p.fail("Failed to delete item", err)
	}
	p.mu.Lock()
	p.itemList = RemoveByID(p.itemList, id)
	p.mu.Unlock()
	p.refreshStats(ctx)

	p.success("Item deleted", "")
	p.record(ctx, "item.deleted", "item", id)
	return nil
}

func (p *MenuPage) refreshStats(ctx context.Context) {
	stats, err := p.items.GetItemStats(ctx)
	if err != nil {
		p.fail("Failed to refresh menu statistics", err)
		return
	}
	p.mu.Lock()
	p.stats = stats
	p.mu.Unlock()
}

func (p *MenuPage) categoryName(id string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, category := range p.categoryList {
		if category.ID == id {
			return category.Name
		}
	}
	return id
}

func (p *MenuPage) itemName(id string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, item := range p.itemList {
		if item.ID == id {
			return item.Name
		}
	}
	return id
}
