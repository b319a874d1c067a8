package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"menuqr-dashboard/dashboard-svc/internal/domain"
	"menuqr-dashboard/dashboard-svc/internal/transport"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenKey = "auth_token"
	UserKey  = "auth_user"

	TenantHeader = "X-Tenant-Id"
)

var (
	ErrNoTenant            = errors.New("no restaurant is attached to the current user")
	ErrEmptyProfileUpdate  = errors.New("profile update has no fields")
	ErrMalformedAuthResult = errors.New("authentication response has no token")
)

// Storage is the durable side of the session.
type Storage interface {
	Load(ctx context.Context, keys ...string) (map[string]string, error)
	Save(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, keys ...string) error
}

// Store holds the bearer token and user of the signed in owner.
type Store struct {
	mu             sync.RWMutex
	token          string
	user           *domain.User
	fallbackTenant string

	storage Storage
	api     *transport.Client
	public  *transport.Client
}

// NewStore hydrates the session from storage. fallbackTenant is sent as the
// tenant header while nobody is signed in; an empty value omits the header.
func NewStore(ctx context.Context, client *transport.Client, storage Storage, fallbackTenant string) *Store {
	s := &Store{
		fallbackTenant: fallbackTenant,
		storage:        storage,
		public:         client.Public(),
	}
	s.api = client.WithHeaders(s)

	if err := s.Hydrate(ctx); err != nil {
		log.Printf("ERROR: [SESSION] initial hydration failed: %v", err)
	}
	return s
}

// Client returns a REST client that carries this session's headers.
func (s *Store) Client() *transport.Client {
	return s.api
}

func (s *Store) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	return s.authenticate(ctx, "/auth/login", creds)
}

// Register creates the owner account for an existing tenant.
func (s *Store) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	return s.authenticate(ctx, "/auth/register", req)
}

func (s *Store) authenticate(ctx context.Context, path string, payload any) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	decoded, err := s.public.JSON(ctx, http.MethodPost, path, nil, payload, &resp)
	if err != nil {
		return nil, transport.AsAuthError(err)
	}
	if !decoded || resp.Token == "" {
		return nil, ErrMalformedAuthResult
	}

	user := resp.User
	s.mu.Lock()
	s.token = resp.Token
	s.user = user.Clone()
	s.mu.Unlock()

	s.persist(ctx, resp.Token, &user)
	return &resp, nil
}

func (s *Store) persist(ctx context.Context, token string, user *domain.User) {
	if s.storage == nil {
		return
	}
	raw, err := json.Marshal(user)
	if err != nil {
		log.Printf("ERROR: [SESSION] encode user: %v", err)
		return
	}
	if err := s.storage.Save(ctx, map[string]string{TokenKey: token, UserKey: string(raw)}); err != nil {
		log.Printf("ERROR: [SESSION] persist session: %v", err)
	}
}

// Logout forgets the session locally. The backend is not called.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if s.storage == nil {
		return
	}
	if err := s.storage.Delete(ctx, TokenKey, UserKey); err != nil {
		log.Printf("ERROR: [SESSION] clear stored session: %v", err)
	}
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

// AuthHeaders always carries the tenant header unless no tenant is known and
// the fallback is disabled. Authorization is present only with a token.
func (s *Store) AuthHeaders() http.Header {
	s.mu.RLock()
	defer s.mu.RUnlock()

	header := http.Header{}
	tenant := s.user.TenantKey()
	if tenant == "" {
		tenant = s.fallbackTenant
	}
	if tenant != "" {
		header.Set(TenantHeader, tenant)
	}
	if s.token != "" {
		header.Set("Authorization", "Bearer "+s.token)
	}
	return header
}

// TokenExpiry reads the exp claim. The signature is not verified.
func (s *Store) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// RefreshUser reloads the profile when signed in. Without a token it returns
// the held user unchanged.
func (s *Store) RefreshUser(ctx context.Context) (*domain.User, error) {
	if !s.IsAuthenticated() {
		return s.CurrentUser(), nil
	}

	var user domain.User
	decoded, err := s.api.JSON(ctx, http.MethodGet, "/auth/profile", nil, nil, &user)
	if err != nil {
		return nil, err
	}
	if !decoded {
		return s.CurrentUser(), nil
	}

	s.mu.Lock()
	s.user = user.Clone()
	s.mu.Unlock()
	return &user, nil
}

// UpdateRestaurantProfile patches the owner's tenant and merges the server's
// answer into the held user.
func (s *Store) UpdateRestaurantProfile(ctx context.Context, update domain.TenantUpdate) (*domain.Tenant, error) {
	user := s.CurrentUser()
	tenantID := user.TenantKey()
	if tenantID == "" {
		return nil, ErrNoTenant
	}
	fields := update.Fields()
	if len(fields) == 0 {
		return nil, ErrEmptyProfileUpdate
	}

	var patch json.RawMessage
	decoded, err := s.api.JSON(ctx, http.MethodPatch, "/tenants/"+url.PathEscape(tenantID), nil, fields, &patch)
	if err != nil {
		return nil, err
	}

	current := domain.Tenant{ID: tenantID}
	if user.Tenant != nil {
		current = *user.Tenant
	}
	if !decoded {
		return &current, nil
	}
	merged, err := current.Merge(patch)
	if err != nil {
		return nil, fmt.Errorf("merge tenant: %w", err)
	}

	s.mu.Lock()
	if s.user != nil && s.user.TenantKey() == tenantID {
		tenant := merged.Clone()
		s.user.Tenant = &tenant
	}
	s.mu.Unlock()
	return &merged, nil
}

// Hydrate replaces the in-memory session with what storage holds.
func (s *Store) Hydrate(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}
	values, err := s.storage.Load(ctx, TokenKey, UserKey)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	var user *domain.User
	if raw, ok := values[UserKey]; ok && raw != "" {
		user = &domain.User{}
		if err := json.Unmarshal([]byte(raw), user); err != nil {
			log.Printf("Warning: [SESSION] discarding unreadable stored user: %v", err)
			user = nil
		}
	}

	s.mu.Lock()
	s.token = values[TokenKey]
	s.user = user
	s.mu.Unlock()
	return nil
}
