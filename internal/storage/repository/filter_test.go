package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plateful/plateful-backend/internal/models"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestBuildFilterQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    models.RestaurantFilter
		wantConds []string
		wantArgs  []any
	}{
		{
			name:      "empty filter has no WHERE",
			filter:    models.RestaurantFilter{},
			wantConds: nil,
			wantArgs:  nil,
		},
		{
			name:      "cuisine is a case-insensitive substring",
			filter:    models.RestaurantFilter{Cuisine: "thai"},
			wantConds: []string{"cuisine ILIKE $1"},
			wantArgs:  []any{"%thai%"},
		},
		{
			name:      "blank cuisine is ignored",
			filter:    models.RestaurantFilter{Cuisine: "   "},
			wantConds: nil,
			wantArgs:  nil,
		},
		{
			name:      "price range is inclusive",
			filter:    models.RestaurantFilter{PriceMin: intPtr(1), PriceMax: intPtr(3)},
			wantConds: []string{"price_level >= $1", "price_level <= $2"},
			wantArgs:  []any{1, 3},
		},
		{
			name:      "inverted price bounds are swapped",
			filter:    models.RestaurantFilter{PriceMin: intPtr(4), PriceMax: intPtr(2)},
			wantConds: []string{"price_level >= $1", "price_level <= $2"},
			wantArgs:  []any{2, 4},
		},
		{
			name:      "reservation is exact equality",
			filter:    models.RestaurantFilter{Reservation: boolPtr(true)},
			wantConds: []string{"reservation_required = $1"},
			wantArgs:  []any{true},
		},
		{
			name:      "cities are OR-combined and normalized",
			filter:    models.RestaurantFilter{Cities: []string{" Auckland ", "WELLINGTON", " "}},
			wantConds: []string{"(LOWER(address->>'city') = $1 OR LOWER(address->>'city') = $2)"},
			wantArgs:  []any{"auckland", "wellington"},
		},
		{
			name: "all predicates are AND-combined",
			filter: models.RestaurantFilter{
				Cuisine:     "thai",
				PriceMin:    intPtr(1),
				PriceMax:    intPtr(3),
				Reservation: boolPtr(false),
				Cities:      []string{"Auckland"},
			},
			wantConds: []string{
				"cuisine ILIKE $1",
				"price_level >= $2",
				"price_level <= $3",
				"reservation_required = $4",
				"(LOWER(address->>'city') = $5)",
			},
			wantArgs: []any{"%thai%", 1, 3, false, "auckland"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildFilterQuery(tt.filter)

			assert.True(t, strings.HasSuffix(query, " ORDER BY name"))
			if tt.wantConds == nil {
				assert.NotContains(t, query, "WHERE")
			} else {
				assert.Contains(t, query, " WHERE "+strings.Join(tt.wantConds, " AND "))
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
