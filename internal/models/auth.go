package models

// TokenTypeBearer is the only token type issued.
const TokenTypeBearer = "bearer"

// UserResponse is the public view of a user
// swagger:model UserResponse
type UserResponse struct {
	// example: 1
	ID int64 `json:"id"`
	// example: admin@trial.com
	Email string `json:"email"`
	// example: Admin User
	FullName *string `json:"full_name"`
}

// TokenResponse is returned by registration and login
// swagger:model TokenResponse
type TokenResponse struct {
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`
	// example: bearer
	TokenType string       `json:"token_type"`
	User      UserResponse `json:"user"`
}

// NewTokenResponse builds the response body for an issued token.
func NewTokenResponse(token string, user *User) TokenResponse {
	return TokenResponse{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		User: UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		},
	}
}
