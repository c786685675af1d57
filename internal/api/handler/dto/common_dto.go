package dto

type FieldErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorDetail struct {
	Code    string             `json:"code,omitempty"`
	Message string             `json:"message"`
	Field   string             `json:"field,omitempty"`
	Fields  []FieldErrorDetail `json:"fields,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type TokenRequest struct {
	Username string `json:"username"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
