// File: utils/constants.go
package utils

// Keys used in the persistent key-value store. They match the keys the web
// client writes to browser storage so values can be exchanged verbatim.
const (
	UserLocationKey      = "apna_user_location"
	FavoriteProvidersKey = "apna_favorite_providers"
	ThemeKey             = "theme"
)

// DateLayout is the ISO date format used for review and booking dates.
const DateLayout = "2006-01-02"
