// Package cookie centralizes the storefront's cookie names and attributes.
// Every session cookie goes through here so HttpOnly and SameSite are never
// forgotten on one call site.
package cookie

import (
	"net/http"
	"time"
)

// Common cookie names used throughout the application.
const (
	// CartCookieName carries the anonymous cart session token.
	CartCookieName = "partyland_cart"

	// AdminCookieName carries the admin console session token.
	AdminCookieName = "partyland_admin"

	// LangCookieName remembers the customer's language choice (ru or uz).
	LangCookieName = "partyland_lang"
)

// Config holds the attributes shared by all cookies the service sets.
type Config struct {
	// Secure requires HTTPS. True in production, false for local work.
	Secure bool
}

func NewConfig(secure bool) *Config {
	return &Config{Secure: secure}
}

// SetSession sets an HttpOnly session cookie. maxAge <= 0 makes it a
// browser-session cookie.
func (c *Config) SetSession(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetSessionWithExpiry sets an HttpOnly session cookie with an absolute
// expiration, used for admin sessions whose lifetime the service tracks.
func (c *Config) SetSessionWithExpiry(w http.ResponseWriter, name, value string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetLang sets the language cookie. It is readable by scripts on purpose.
func (c *Config) SetLang(w http.ResponseWriter, lang string) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    lang,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSession removes a cookie.
func (c *Config) ClearSession(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Get retrieves a cookie value, empty when absent.
func Get(r *http.Request, name string) string {
	ck, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return ck.Value
}
