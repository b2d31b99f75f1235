package types

// ErrorResponse is the JSON body for failed document-processing requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VerifyResponse is the JSON body for /api/verify_whop.
type VerifyResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}
