package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// NewToken генерирует opaque-токен: 32 случайных байта в hex.
// Возвращает сырое значение (отдаётся клиенту один раз) и sha256-дайджест
// (единственное, что попадает в БД).
func NewToken() (raw string, digest string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	return raw, HashToken(raw), nil
}

// HashToken — sha256-дайджест предъявленного токена в hex.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
