// Package i18n holds the bilingual string tables and the quantity/price
// formatting helpers shared by the storefront responses.
package i18n

// Lang identifies a supported storefront language.
type Lang string

const (
	RU Lang = "ru"
	UZ Lang = "uz"
)

// ParseLang normalizes a raw language value, defaulting to Russian.
func ParseLang(s string) Lang {
	if s == string(UZ) {
		return UZ
	}
	return RU
}

var translations = map[Lang]map[string]string{
	RU: {
		"cart.emptyTitle":       "Ваша корзина пуста",
		"cart.emptyDescription": "Похоже, вы ещё не добавили товары для праздника. Давайте подберём что-то волшебное!",
		"cart.title":            "Корзина",
		"cart.itemSingular":     "товар",
		"cart.itemFew":          "товара",
		"cart.itemPlural":       "товаров",
		"cart.itemsSuffix":      "в вашей корзине",
		"cart.total":            "Всего",
		"checkout.addressRequired":       "Пожалуйста, укажите адрес доставки.",
		"checkout.submitFailed":          "Не удалось оформить заказ. Попробуйте ещё раз позже.",
		"checkout.instructionsTitle":     "Как оплатить заказ",
		"checkout.instructionsSubtitle":  "Выберите удобный способ оплаты и отправьте чек администратору в Telegram.",
		"checkout.instructionsSendCheck": "После оплаты отправьте чек администратору в Telegram, чтобы мы подтвердили заказ.",
	},
	UZ: {
		"cart.emptyTitle":       "Savatingiz bo'sh",
		"cart.emptyDescription": "Hali hech qanday bayram buyurtmasini qo'shmagansiz. Keling, biror sehrli narsa topamiz!",
		"cart.title":            "Savat",
		"cart.itemSingular":     "mahsulot",
		"cart.itemFew":          "mahsulot",
		"cart.itemPlural":       "mahsulot",
		"cart.itemsSuffix":      "savatda",
		"cart.total":            "Jami",
		"checkout.addressRequired":       "Iltimos, yetkazib berish manzilini ko'rsating.",
		"checkout.submitFailed":          "Buyurtmani rasmiylashtirib bo'lmadi. Keyinroq qayta urinib ko'ring.",
		"checkout.instructionsTitle":     "Buyurtmani to'lash tartibi",
		"checkout.instructionsSubtitle":  "Qulay to'lov usulini tanlang va chekni Telegram orqali administratorga yuboring.",
		"checkout.instructionsSendCheck": "To'lovdan so'ng chekni Telegramda administratorga yuboring.",
	},
}

// T looks up a translation, falling back to Russian and then to the key
// itself so a missing entry degrades visibly rather than silently.
func T(lang Lang, key string) string {
	if s, ok := translations[lang][key]; ok {
		return s
	}
	if s, ok := translations[RU][key]; ok {
		return s
	}
	return key
}
