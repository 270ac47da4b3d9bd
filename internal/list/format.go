package list

import (
	"strings"

	"github.com/idilsaglam/grocery/internal/model"
)

const (
	shareHeader         = "🛒 Grocery List"
	shareToBuyTitle     = "📝 To Buy:"
	sharePurchasedTitle = "✅ Purchased:"
	shareBullet         = "• "
)

// FormatShareText renders items as the plain-text message handed to the
// share gateway. Unpurchased items come first, then purchased ones, each
// group in list order. A group with no items is left out entirely.
func FormatShareText(items []model.Item) string {
	var toBuy, purchased []string
	for _, it := range items {
		if it.Purchased {
			purchased = append(purchased, it.Name)
		} else {
			toBuy = append(toBuy, it.Name)
		}
	}

	var b strings.Builder
	b.WriteString(shareHeader + "\n\n")
	if len(toBuy) > 0 {
		b.WriteString(shareToBuyTitle + "\n")
		writeBullets(&b, toBuy)
		b.WriteString("\n")
	}
	if len(purchased) > 0 {
		b.WriteString(sharePurchasedTitle + "\n")
		writeBullets(&b, purchased)
	}
	return b.String()
}

func writeBullets(b *strings.Builder, names []string) {
	for _, n := range names {
		b.WriteString(shareBullet + n + "\n")
	}
}
