package i18n

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ItemWord returns the count noun for n items. Russian needs the three-form
// rule (товар/товара/товаров) with the 11-14 exception; Uzbek has no
// grammatical number here beyond singular vs. everything else.
func ItemWord(lang Lang, n int) string {
	if n < 0 {
		n = -n
	}
	mod10 := n % 10
	mod100 := n % 100

	if lang == RU {
		switch {
		case mod10 == 1 && mod100 != 11:
			return T(lang, "cart.itemSingular")
		case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
			return T(lang, "cart.itemFew")
		default:
			return T(lang, "cart.itemPlural")
		}
	}

	if n == 1 {
		return T(lang, "cart.itemSingular")
	}
	return T(lang, "cart.itemPlural")
}

// ItemsCountLabel renders the cart header line, e.g. "3 товара в вашей корзине".
func ItemsCountLabel(lang Lang, n int) string {
	return fmt.Sprintf("%d %s %s", n, ItemWord(lang, n), T(lang, "cart.itemsSuffix"))
}

// FormatUZS renders a whole-sum amount with thousands separators and the
// сум suffix, e.g. 1234567 -> "1 234 567 сум".
func FormatUZS(amount int64) string {
	return groupDigits(fmt.Sprintf("%d", amount)) + " сум"
}

// FormatUZSString formats a backend decimal price string. Unparseable input
// is passed through untouched with the suffix, matching the original
// frontend's tolerance.
func FormatUZSString(amount string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return amount + " сум"
	}
	return FormatUZS(d.Round(0).IntPart())
}

func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
