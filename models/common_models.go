// models/common_models.go
package models

// ErrorResponse is the standard body for request-validation failures.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid host format"`
}
