package dto

import (
	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	"github.com/fintrackpro/fintrack_app/internal/core/session"
)

// LoginRequest starts a session for a display name (demo identity).
type LoginRequest struct {
	Name string `json:"name" binding:"required"`
}

// RestoreRequest rebuilds a session from a stored restoration token.
type RestoreRequest struct {
	Token string `json:"token" binding:"required"`
}

// UserResponse mirrors domain.User.
type UserResponse struct {
	UserID    string `json:"userID"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// SessionResponse is the full state handed to the presentation layer after
// login or restore. LoadFailed signals the user-visible failure state of a
// session whose initial fetch failed.
type SessionResponse struct {
	Token        string                `json:"token,omitempty"`
	User         UserResponse          `json:"user"`
	Seeded       bool                  `json:"seeded"`
	LoadFailed   bool                  `json:"loadFailed"`
	Accounts     []AccountResponse     `json:"accounts"`
	Transactions []TransactionResponse `json:"transactions"`
	Stocks       []StockResponse       `json:"stocks"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
	}
}

// ToSessionResponse snapshots a session into its response DTO.
func ToSessionResponse(sess *session.Session, token string) SessionResponse {
	accounts, transactions, stocks := sess.View()
	return SessionResponse{
		Token:        token,
		User:         ToUserResponse(sess.User),
		Seeded:       sess.Seeded,
		LoadFailed:   sess.LoadFailed,
		Accounts:     ToListAccountResponse(accounts),
		Transactions: ToListTransactionResponse(transactions),
		Stocks:       ToListStockResponse(stocks),
	}
}
