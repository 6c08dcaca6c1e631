package auth

// Provider issues and verifies bearer tokens for registered users.
type Provider interface {
	IssueToken(userID string) (string, error)
	ValidateToken(token string) (string, error) // returns the user ID
}
