// models/user.go
package models

// CurrentUser is the single fixed customer identity of a session.
type CurrentUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
}
