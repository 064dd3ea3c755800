package dto

// ErrorResponse cuerpo de error HTTP. Errors lleva el detalle de validación, uno por problema.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}
