package response

// SuccessResponse is the generic success envelope.
type SuccessResponse struct {
	Message string `json:"message" example:"Operation completed successfully"`
}

// ErrorResponse carries a machine-checkable code plus a human-readable
// message.
type ErrorResponse struct {
	// Error code for programmatic handling
	// example: VALIDATION_ERROR
	Code string `json:"code"`

	// Human-readable error message
	// example: Name and service are required
	Message string `json:"message"`

	// Optional extra details
	// example: field category must be one of library, canteen, academic
	Details string `json:"details,omitempty"`
}

// TokenResponse carries the auth token pair.
type TokenResponse struct {
	// JWT for accessing protected endpoints
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// JWT for refreshing the access token
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refresh_token"`
}

// DeletedResponse reports the outcome of an expiry sweep.
type DeletedResponse struct {
	Success      bool `json:"success"`
	DeletedCount int  `json:"deleted_count"`
}
