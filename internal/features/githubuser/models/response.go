package models

// ErrorResponse
// @Description Failure envelope with a human readable message
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"This is not the correct way to use the API."`
}

// UserRequest is the body of the single endpoint. Fresh is untyped because
// clients send it as a boolean or as a string; only true and "true" count.
type UserRequest struct {
	Name  string      `json:"name" example:"octocat"`
	Fresh interface{} `json:"fresh,omitempty" swaggertype:"boolean"`
}
