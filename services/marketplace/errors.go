package marketplace

import "errors"

var (
	ErrNoCurrentUser = errors.New("no current user")
	ErrEmptyComment  = errors.New("review comment is required")
)
