package list

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/grocery/internal/model"
	"github.com/idilsaglam/grocery/internal/testutil"
)

func TestFormatShareText_Golden(t *testing.T) {
	tests := []struct {
		golden string
		items  []model.Item
	}{
		{
			golden: "share_mixed",
			items: []model.Item{
				{ID: "1", Name: "Milk", Purchased: true},
				{ID: "2", Name: "Eggs"},
			},
		},
		{
			golden: "share_to_buy_only",
			items: []model.Item{
				{ID: "1", Name: "Bread"},
				{ID: "2", Name: "Apples"},
			},
		},
		{
			golden: "share_purchased_only",
			items: []model.Item{
				{ID: "1", Name: "Bread", Purchased: true},
				{ID: "2", Name: "Apples", Purchased: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			testutil.GoldenString(t, tt.golden, FormatShareText(tt.items))
		})
	}
}

func TestFormatShareText_EmptyListIsHeaderOnly(t *testing.T) {
	assert.Equal(t, "🛒 Grocery List\n\n", FormatShareText(nil))
}

func TestFormatShareText_KeepsListOrderWithinSections(t *testing.T) {
	items := []model.Item{
		{Name: "A"},
		{Name: "B", Purchased: true},
		{Name: "C"},
		{Name: "D", Purchased: true},
	}

	want := "🛒 Grocery List\n\n📝 To Buy:\n• A\n• C\n\n✅ Purchased:\n• B\n• D\n"
	assert.Equal(t, want, FormatShareText(items))
}

func TestFormatShareText_IsPure(t *testing.T) {
	items := []model.Item{{ID: "1", Name: "Milk", Purchased: true}}
	snapshot := append([]model.Item(nil), items...)

	first := FormatShareText(items)
	second := FormatShareText(items)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, items)
}
