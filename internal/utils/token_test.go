package utils

import "testing"

func TestNewToken(t *testing.T) {
	raw, digest, err := NewToken()
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}
	if len(raw) != 64 {
		t.Fatalf("ожидалось 64 hex-символа, получено %d", len(raw))
	}
	if HashToken(raw) != digest {
		t.Fatal("digest должен совпадать с хешем raw-токена")
	}

	raw2, _, err := NewToken()
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}
	if raw == raw2 {
		t.Fatal("токены должны быть уникальными")
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("ошибка хеширования: %v", err)
	}
	if !CheckPasswordHash("secret123", hash) {
		t.Fatal("верный пароль не прошёл проверку")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("неверный пароль не должен проходить проверку")
	}
}
