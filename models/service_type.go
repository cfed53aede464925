// models/service_type.go
package models

// PopularService is a landing-page category with its booking volume.
type PopularService struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}
