package theme

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"apna/database/kv"
	"apna/utils"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

var ErrInvalidTheme = errors.New("invalid theme")

func Parse(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case Light, Dark:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

// Resolve picks the stored preference, then the system preference. Anything
// unreadable counts as no preference.
func Resolve(ctx context.Context, store kv.Store, systemPrefersDark bool) Theme {
	if store != nil {
		if raw, ok := store.Get(ctx, utils.ThemeKey); ok {
			switch Theme(raw) {
			case Dark:
				return Dark
			case Light:
				return Light
			}
		}
	}
	if systemPrefersDark {
		return Dark
	}
	return Light
}

func Save(ctx context.Context, store kv.Store, t Theme) {
	if store == nil {
		return
	}
	store.Set(ctx, utils.ThemeKey, string(t))
}
