package cookies

import (
	"net/http"
	"time"

	"github.com/TituxMetal/epicweb-notes-app/models"
)

// ThemeCookieName is the name of the theme preference cookie. Unlike the
// session-bound cookies it is a plain value: the client reads it before
// hydration to avoid a flash of the wrong theme.
const ThemeCookieName = "theme"

// themeMaxAge keeps the preference for a year.
const themeMaxAge = int(365 * 24 * time.Hour / time.Second)

// ReadTheme returns the theme preference carried by the request, falling
// back to light when the cookie is missing or holds anything unexpected.
func ReadTheme(r *http.Request) models.Theme {
	cookie, err := r.Cookie(ThemeCookieName)
	if err != nil {
		return models.ThemeLight
	}

	if theme := models.Theme(cookie.Value); theme.Valid() {
		return theme
	}

	return models.ThemeLight
}

// WriteTheme sets the long-lived, path-root theme cookie on the response.
// The cookie is intentionally not httpOnly and carries no session binding.
func WriteTheme(w http.ResponseWriter, theme models.Theme) {
	http.SetCookie(w, &http.Cookie{
		Name:     ThemeCookieName,
		Value:    string(theme),
		Path:     "/",
		MaxAge:   themeMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}
