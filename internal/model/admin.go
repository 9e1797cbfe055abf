package model

// Admin is a back-office account.
type Admin struct {
	ID           int64  `json:"id"`
	Login        string `json:"login"`
	PasswordHash string `json:"-"`
}
