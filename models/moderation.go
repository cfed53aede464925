package models

import (
	"errors"
	"fmt"
	"strings"
)

type ModerationAction string

const (
	ModerationFlag    ModerationAction = "flag"
	ModerationBlock   ModerationAction = "block"
	ModerationUnblock ModerationAction = "unblock"
)

var ErrInvalidModerationAction = errors.New("invalid moderation action")

func ParseModerationAction(s string) (ModerationAction, error) {
	switch a := ModerationAction(strings.ToLower(strings.TrimSpace(s))); a {
	case ModerationFlag, ModerationBlock, ModerationUnblock:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidModerationAction, s)
}
