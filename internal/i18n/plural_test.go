package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemWord_Russian(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "товар"},
		{21, "товар"},
		{101, "товар"},
		{2, "товара"},
		{3, "товара"},
		{4, "товара"},
		{22, "товара"},
		{5, "товаров"},
		{10, "товаров"},
		{11, "товаров"},
		{12, "товаров"},
		{13, "товаров"},
		{14, "товаров"},
		{111, "товаров"},
		{114, "товаров"},
		{0, "товаров"},
		{100, "товаров"},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, ItemWord(RU, tt.n), "n=%d", tt.n)
	}
}

func TestItemWord_Uzbek(t *testing.T) {
	assert.Equal(t, "mahsulot", ItemWord(UZ, 1))
	assert.Equal(t, "mahsulot", ItemWord(UZ, 5))
}

func TestItemsCountLabel(t *testing.T) {
	assert.Equal(t, "3 товара в вашей корзине", ItemsCountLabel(RU, 3))
	assert.Equal(t, "1 товар в вашей корзине", ItemsCountLabel(RU, 1))
	assert.Equal(t, "11 товаров в вашей корзине", ItemsCountLabel(RU, 11))
	assert.Equal(t, "2 mahsulot savatda", ItemsCountLabel(UZ, 2))
}

func TestFormatUZS(t *testing.T) {
	assert.Equal(t, "0 сум", FormatUZS(0))
	assert.Equal(t, "999 сум", FormatUZS(999))
	assert.Equal(t, "25 000 сум", FormatUZS(25000))
	assert.Equal(t, "1 234 567 сум", FormatUZS(1234567))
	assert.Equal(t, "-5 000 сум", FormatUZS(-5000))
}

func TestFormatUZSString(t *testing.T) {
	assert.Equal(t, "120 000 сум", FormatUZSString("120000.00"))
	assert.Equal(t, "1 500 сум", FormatUZSString("1500"))
	// Unparseable input passes through.
	assert.Equal(t, "abc сум", FormatUZSString("abc"))
}

func TestParseLang(t *testing.T) {
	assert.Equal(t, UZ, ParseLang("uz"))
	assert.Equal(t, RU, ParseLang("ru"))
	assert.Equal(t, RU, ParseLang(""))
	assert.Equal(t, RU, ParseLang("en"))
}

func TestT_FallsBackToRussian(t *testing.T) {
	assert.Equal(t, "Корзина", T(RU, "cart.title"))
	assert.Equal(t, "Savat", T(UZ, "cart.title"))
	assert.Equal(t, "missing.key", T(RU, "missing.key"))
}
