package entity

// Identity is the authenticated principal carried inside tokens.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// TokenPair is issued at login. ExpiresAt is the access token expiry in epoch milliseconds.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    int64
}

// RenewedToken is the result of exchanging a refresh token for a new access token.
type RenewedToken struct {
	AccessToken string
	Username    string
	ExpiresAt   int64
}

// Owned is implemented by every resource whose creator is the sole party allowed to mutate it.
type Owned interface {
	OwnerUsername() string
}
