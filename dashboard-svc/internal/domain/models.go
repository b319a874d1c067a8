package domain

import (
	"encoding/json"
	"maps"
	"time"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderAccepted  OrderStatus = "ACCEPTED"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// OrderStatuses lists the lifecycle in display order, CANCELLED last.
var OrderStatuses = []OrderStatus{
	OrderPending, OrderAccepted, OrderPreparing, OrderReady, OrderDelivered, OrderCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "CASH"
	PaymentCard        PaymentMethod = "CARD"
	PaymentWave        PaymentMethod = "WAVE"
	PaymentMyNita      PaymentMethod = "MYNITA"
	PaymentOrangeMoney PaymentMethod = "ORANGE_MONEY"
)

// Manual reports whether the method is settled by a customer-supplied
// transaction reference.
func (m PaymentMethod) Manual() bool {
	switch m {
	case PaymentWave, PaymentMyNita, PaymentOrangeMoney:
		return true
	}
	return false
}

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard || m.Manual()
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentSuccess   PaymentStatus = "SUCCESS"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentCancelled PaymentStatus = "CANCELLED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

type PaymentAccount struct {
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

type Tenant struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	Slug        string                    `json:"slug"`
	Email       string                    `json:"email,omitempty"`
	Phone       string                    `json:"phone,omitempty"`
	Address     string                    `json:"address,omitempty"`
	Description string                    `json:"description,omitempty"`
	Website     string                    `json:"website,omitempty"`
	LogoURL     string                    `json:"logo_url,omitempty"`
	BannerURL   string                    `json:"banner_url,omitempty"`
	PaymentInfo map[string]PaymentAccount `json:"payment_info,omitempty"`
	IsActive    bool                      `json:"is_active"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

// Merge overlays the fields present in a JSON patch onto a copy of the tenant.
// Fields missing from the patch keep their current value.
func (t Tenant) Merge(patch json.RawMessage) (Tenant, error) {
	current, err := json.Marshal(t)
	if err != nil {
		return t, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(current, &fields); err != nil {
		return t, err
	}
	overlay := map[string]json.RawMessage{}
	if err := json.Unmarshal(patch, &overlay); err != nil {
		return t, err
	}
	maps.Copy(fields, overlay)

	merged, err := json.Marshal(fields)
	if err != nil {
		return t, err
	}
	var out Tenant
	if err := json.Unmarshal(merged, &out); err != nil {
		return t, err
	}
	return out, nil
}

func (t Tenant) Clone() Tenant {
	t.PaymentInfo = maps.Clone(t.PaymentInfo)
	return t
}

// TenantUpdate carries the restaurant profile fields an owner may change.
// Nil fields are left untouched on the server.
type TenantUpdate struct {
	Name        *string                   `json:"name,omitempty"`
	Slug        *string                   `json:"slug,omitempty"`
	Email       *string                   `json:"email,omitempty"`
	Phone       *string                   `json:"phone,omitempty"`
	Address     *string                   `json:"address,omitempty"`
	Description *string                   `json:"description,omitempty"`
	Website     *string                   `json:"website,omitempty"`
	LogoURL     *string                   `json:"logo_url,omitempty"`
	BannerURL   *string                   `json:"banner_url,omitempty"`
	PaymentInfo map[string]PaymentAccount `json:"payment_info,omitempty"`
}

// Fields returns only the keys that were set.
func (u TenantUpdate) Fields() map[string]any {
	fields := map[string]any{}
	set := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	set("name", u.Name)
	set("slug", u.Slug)
	set("email", u.Email)
	set("phone", u.Phone)
	set("address", u.Address)
	set("description", u.Description)
	set("website", u.Website)
	set("logo_url", u.LogoURL)
	set("banner_url", u.BannerURL)
	if u.PaymentInfo != nil {
		fields["payment_info"] = u.PaymentInfo
	}
	return fields
}

func (u TenantUpdate) Empty() bool {
	return len(u.Fields()) == 0
}

type CreateTenantRequest struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Role      string    `json:"role"`
	TenantID  string    `json:"tenant_id,omitempty"`
	Tenant    *Tenant   `json:"tenant,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TenantKey is the tenant the user administers.
func (u *User) TenantKey() string {
	if u == nil {
		return ""
	}
	if u.Tenant != nil && u.Tenant.ID != "" {
		return u.Tenant.ID
	}
	return u.TenantID
}

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	if u.Tenant != nil {
		tenant := u.Tenant.Clone()
		out.Tenant = &tenant
	}
	return &out
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TenantID  string `json:"tenant_id"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
