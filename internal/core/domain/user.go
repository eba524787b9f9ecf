package domain

// User represents the logged-in identity. It is persisted as the per-user
// profile document and inside the session restoration token; it is not
// financial data of record.
type User struct {
	UserID    string `json:"userID"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}
