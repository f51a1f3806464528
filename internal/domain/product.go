package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Category is a product category from the shop backend.
type Category struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	NameUz string `json:"name_uz,omitempty"`
	Slug   string `json:"slug"`
	Parent *int64 `json:"parent,omitempty"`
	Image  string `json:"image,omitempty"`
}

// LocalizedName returns the category name for the given language,
// falling back to Russian when no Uzbek translation exists.
func (c Category) LocalizedName(lang string) string {
	if lang == "uz" && c.NameUz != "" {
		return c.NameUz
	}
	return c.Name
}

// Product is a catalog product from the shop backend. The backend serializes
// price as a decimal string and may expand category into a full object on
// detail responses; CategoryRef keeps the raw form for both cases.
type Product struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	TitleUz       string          `json:"title_uz,omitempty"`
	Description   string          `json:"description"`
	DescriptionUz string          `json:"description_uz,omitempty"`
	Price         string          `json:"price"`
	CategoryRef   json.RawMessage `json:"category,omitempty"`
	Image         string          `json:"image,omitempty"`
	CreatedAt     string          `json:"created_at,omitempty"`
}

// LocalizedTitle returns the product title for the given language,
// falling back to Russian when no Uzbek translation exists.
func (p Product) LocalizedTitle(lang string) string {
	if lang == "uz" && p.TitleUz != "" {
		return p.TitleUz
	}
	return p.Title
}

// PriceUZS parses the backend's decimal price string into whole UZS.
// Malformed prices parse as zero; the backend stays authoritative for what
// the customer is actually charged.
func (p Product) PriceUZS() int64 {
	d, err := decimal.NewFromString(p.Price)
	if err != nil {
		return 0
	}
	return d.Round(0).IntPart()
}

// Category unmarshals CategoryRef when the backend expanded it into an
// object. List responses carry a bare string instead, in which case ok is
// false.
func (p Product) Category() (Category, bool) {
	var c Category
	if len(p.CategoryRef) == 0 || p.CategoryRef[0] != '{' {
		return Category{}, false
	}
	if err := json.Unmarshal(p.CategoryRef, &c); err != nil {
		return Category{}, false
	}
	return c, true
}

// CategoryName returns the category as a display string regardless of
// whether the backend sent a slug string or an expanded object.
func (p Product) CategoryName(lang string) string {
	if c, ok := p.Category(); ok {
		return c.LocalizedName(lang)
	}
	var s string
	if err := json.Unmarshal(p.CategoryRef, &s); err != nil {
		return ""
	}
	return s
}
