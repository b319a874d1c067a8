package service_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"menuqr-dashboard/dashboard-svc/internal/domain"
	"menuqr-dashboard/dashboard-svc/internal/transport"

	"github.com/gorilla/mux"
)

type sessionHeaders struct{}

func (sessionHeaders) AuthHeaders() http.Header {
	return http.Header{"Authorization": {"Bearer tok"}, "X-Tenant-Id": {"t1"}}
}

// fakeBackend records the last request and serves a small in-memory menu.
type fakeBackend struct {
	mu         sync.Mutex
	router     *mux.Router
	lastQuery  string
	lastHeader http.Header
	lastBody   map[string]any
	categories []domain.Category
	items      map[string]domain.Item
}

func newFakeBackend(t *testing.T) (*fakeBackend, *transport.Client) {
	t.Helper()
	fb := &fakeBackend{items: map[string]domain.Item{}}
	root := mux.NewRouter()
	root.Use(fb.record)
	fb.router = root.PathPrefix("/api/v1").Subrouter()

	srv := httptest.NewServer(root)
	t.Cleanup(srv.Close)

	client := transport.NewClient(srv.URL+"/api/v1", srv.Client()).WithHeaders(sessionHeaders{})
	return fb, client
}

func (fb *fakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.lastQuery = r.URL.RawQuery
		fb.lastHeader = r.Header.Clone()
		fb.lastBody = nil
		if r.Header.Get("Content-Type") == "application/json" {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
				fb.lastBody = body
			}
		}
		fb.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (fb *fakeBackend) body() map[string]any {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.lastBody
}

func (fb *fakeBackend) query() string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.lastQuery
}

func (fb *fakeBackend) header() http.Header {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.lastHeader
}

func (fb *fakeBackend) handle(path, method string, status int, payload any) {
	fb.router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, payload)
	}).Methods(method)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// serveMenu wires category and item endpoints backed by the fake's state.
func (fb *fakeBackend) serveMenu() {
	fb.router.HandleFunc("/menu/categories", func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		defer fb.mu.Unlock()
		writeJSON(w, http.StatusOK, fb.categories)
	}).Methods("GET")

	fb.router.HandleFunc("/menu/categories", func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		defer fb.mu.Unlock()
		name, _ := fb.lastBody["name"].(string)
		category := domain.Category{ID: "c1", Name: name, SortOrder: 0, IsActive: true}
		fb.categories = append(fb.categories, category)
		writeJSON(w, http.StatusCreated, category)
	}).Methods("POST")

	fb.router.HandleFunc("/menu/items", func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		defer fb.mu.Unlock()
		list := make([]domain.Item, 0, len(fb.items))
		for _, item := range fb.items {
			list = append(list, item)
		}
		writeJSON(w, http.StatusOK, list)
	}).Methods("GET")

	fb.router.HandleFunc("/menu/items/{id}/toggle-stock", func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		defer fb.mu.Unlock()
		item, ok := fb.items[mux.Vars(r)["id"]]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Item not found"})
			return
		}
		item.OutOfStock = !item.OutOfStock
		fb.items[item.ID] = item
		writeJSON(w, http.StatusOK, item)
	}).Methods("PATCH")
}
