package domain_test

import (
	"encoding/json"
	"testing"

	"menuqr-dashboard/dashboard-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantMerge(t *testing.T) {
	tenant := domain.Tenant{
		ID:       "t1",
		Name:     "Chez Ali",
		Slug:     "chez-ali",
		Phone:    "+227 90 00 00 00",
		IsActive: true,
		PaymentInfo: map[string]domain.PaymentAccount{
			"WAVE": {AccountNumber: "90000000", AccountName: "Ali"},
		},
	}

	tests := []struct {
		name  string
		patch string
		check func(t *testing.T, merged domain.Tenant)
	}{
		{
			name:  "overlays present fields",
			patch: `{"name":"Chez Ali & Fils","address":"Niamey"}`,
			check: func(t *testing.T, merged domain.Tenant) {
				assert.Equal(t, "Chez Ali & Fils", merged.Name)
				assert.Equal(t, "Niamey", merged.Address)
				assert.Equal(t, "chez-ali", merged.Slug)
				assert.Equal(t, "+227 90 00 00 00", merged.Phone)
				assert.True(t, merged.IsActive)
			},
		},
		{
			name:  "replaces payment info wholesale",
			patch: `{"payment_info":{"ORANGE_MONEY":{"account_number":"91000000","account_name":"Ali"}}}`,
			check: func(t *testing.T, merged domain.Tenant) {
				assert.Len(t, merged.PaymentInfo, 1)
				assert.Equal(t, "91000000", merged.PaymentInfo["ORANGE_MONEY"].AccountNumber)
			},
		},
		{
			name:  "empty patch keeps everything",
			patch: `{}`,
			check: func(t *testing.T, merged domain.Tenant) {
				assert.Equal(t, tenant.Name, merged.Name)
				assert.Equal(t, tenant.PaymentInfo, merged.PaymentInfo)
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			merged, err := tenant.Merge(json.RawMessage(testCase.patch))
			require.NoError(t, err)
			testCase.check(t, merged)
		})
	}

	t.Run("invalid patch", func(t *testing.T) {
		merged, err := tenant.Merge(json.RawMessage(`[1,2]`))
		assert.Error(t, err)
		assert.Equal(t, tenant.Name, merged.Name)
	})
}

func TestTenantCloneIsIndependent(t *testing.T) {
	tenant := domain.Tenant{PaymentInfo: map[string]domain.PaymentAccount{"WAVE": {AccountNumber: "1"}}}
	clone := tenant.Clone()
	clone.PaymentInfo["WAVE"] = domain.PaymentAccount{AccountNumber: "2"}

	assert.Equal(t, "1", tenant.PaymentInfo["WAVE"].AccountNumber)
}

func TestTenantUpdateFields(t *testing.T) {
	name := "Chez Awa"
	empty := ""

	assert.True(t, domain.TenantUpdate{}.Empty())

	update := domain.TenantUpdate{Name: &name, Website: &empty}
	assert.Equal(t, map[string]any{"name": "Chez Awa", "website": ""}, update.Fields())
	assert.False(t, update.Empty())

	body, err := json.Marshal(update)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Chez Awa","website":""}`, string(body))
}

func TestUserTenantKey(t *testing.T) {
	var nobody *domain.User
	assert.Equal(t, "", nobody.TenantKey())
	assert.Equal(t, "t1", (&domain.User{TenantID: "t1"}).TenantKey())
	assert.Equal(t, "t2", (&domain.User{TenantID: "t1", Tenant: &domain.Tenant{ID: "t2"}}).TenantKey())
}

func TestStatusAndMethodValidity(t *testing.T) {
	assert.True(t, domain.OrderReady.Valid())
	assert.False(t, domain.OrderStatus("LOST").Valid())

	assert.True(t, domain.PaymentWave.Manual())
	assert.False(t, domain.PaymentCash.Manual())
	assert.True(t, domain.PaymentCard.Valid())
	assert.False(t, domain.PaymentMethod("BITCOIN").Valid())
}
