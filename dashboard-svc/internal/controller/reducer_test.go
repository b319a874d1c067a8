package controller

import (
	"testing"

	"menuqr-dashboard/dashboard-svc/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestMergeByID(t *testing.T) {
	list := []domain.Item{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}

	replaced := MergeByID(list, domain.Item{ID: "b", Name: "B2"})
	assert.Equal(t, []domain.Item{{ID: "a", Name: "A"}, {ID: "b", Name: "B2"}}, replaced)
	assert.Equal(t, "B", list[1].Name)

	appended := MergeByID(list, domain.Item{ID: "c", Name: "C"})
	assert.Len(t, appended, 3)
	assert.Equal(t, "c", appended[2].ID)
	assert.Len(t, list, 2)
}

func TestPrependByID(t *testing.T) {
	list := []domain.Order{{ID: "o1"}, {ID: "o2"}}

	fresh := PrependByID(list, domain.Order{ID: "o3"})
	assert.Equal(t, []string{"o3", "o1", "o2"}, orderIDs(fresh))

	existing := PrependByID(list, domain.Order{ID: "o2", Notes: "late"})
	assert.Equal(t, []string{"o1", "o2"}, orderIDs(existing))
	assert.Equal(t, "late", existing[1].Notes)
}

func TestRemoveByID(t *testing.T) {
	list := []domain.Category{{ID: "c1"}, {ID: "c2"}}

	assert.Equal(t, []domain.Category{{ID: "c2"}}, RemoveByID(list, "c1"))
	assert.Equal(t, list, RemoveByID(list, "missing"))
	assert.Empty(t, RemoveByID([]domain.Category(nil), "c1"))
}

func TestMatchesAny(t *testing.T) {
	tests := []struct {
		search string
		fields []string
		want   bool
	}{
		{search: "", fields: []string{"anything"}, want: true},
		{search: "  ", fields: nil, want: true},
		{search: "YASSA", fields: []string{"Poulet yassa"}, want: true},
		{search: "niç", fields: []string{"x", "Salade Niçoise"}, want: true},
		{search: "pizza", fields: []string{"Poulet yassa", ""}, want: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.search, func(t *testing.T) {
			assert.Equal(t, testCase.want, matchesAny(testCase.search, testCase.fields...))
		})
	}
}

func orderIDs(orders []domain.Order) []string {
	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}
	return ids
}
