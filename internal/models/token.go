package models

import "time"

// TokenName — тип-метка всех выдаваемых токенов. Других типов нет.
const TokenName = "auth_token"

// AccessToken хранится только в виде sha256-дайджеста; сырое значение
// возвращается клиенту один раз при выдаче.
type AccessToken struct {
	ID         int        `json:"id"`
	UserID     int        `json:"user_id"`
	Name       string     `json:"name"`
	Token      string     `json:"-"` // sha256 hex
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"` // колонка есть, истечение не проверяется
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"-"`
}
