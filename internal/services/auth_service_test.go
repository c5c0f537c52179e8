package services

import (
	"context"
	"errors"
	"testing"

	"blogapi/internal/models"
	"blogapi/internal/repository"
	"blogapi/internal/utils"
)

// Мок-репозиторий пользователей (заглушка)
type mockUserRepo struct {
	users  map[string]*models.User // по email
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = m.nextID
	m.nextID++
	m.users[user.Email] = user
	return nil
}

func (m *mockUserRepo) IsTaken(_ context.Context, email, username string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, repository.ErrNoRows
	}
	return u, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNoRows
}

// Мок-репозиторий токенов: digest -> user_id
type mockTokenRepo struct {
	users   *mockUserRepo
	digests map[string]int
}

func newMockTokenRepo(users *mockUserRepo) *mockTokenRepo {
	return &mockTokenRepo{users: users, digests: make(map[string]int)}
}

func (m *mockTokenRepo) Insert(_ context.Context, userID int, digest string) error {
	m.digests[digest] = userID
	return nil
}

func (m *mockTokenRepo) DeleteByDigest(_ context.Context, digest string) error {
	delete(m.digests, digest)
	return nil
}

func (m *mockTokenRepo) GetUserByDigest(ctx context.Context, digest string) (*models.User, error) {
	id, ok := m.digests[digest]
	if !ok {
		return nil, repository.ErrNoRows
	}
	return m.users.GetByID(ctx, id)
}

func newTestAuthService() (*AuthService, *mockUserRepo, *mockTokenRepo) {
	users := newMockUserRepo()
	tokens := newMockTokenRepo(users)
	return NewAuthService(users, tokens), users, tokens
}

func TestRegisterUser(t *testing.T) {
	service, users, _ := newTestAuthService()

	user, token, err := service.RegisterUser(context.Background(), RegisterInput{
		Username:             "testuser",
		Email:                "test@example.com",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	})
	if err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}
	if token == "" {
		t.Fatal("токен не выдан")
	}

	saved := users.users["test@example.com"]
	if saved == nil || saved.PasswordHash == "" || saved.PasswordHash == "secret123" {
		t.Fatal("пароль не захеширован или пользователь не сохранён")
	}
	if !utils.CheckPasswordHash("secret123", saved.PasswordHash) {
		t.Fatal("хеш не соответствует паролю")
	}
	if user.Role != models.RoleUser {
		t.Fatalf("ожидалась роль user, получена %q", user.Role)
	}
}

func TestRegisterUser_RoleCoercion(t *testing.T) {
	service, _, _ := newTestAuthService()

	// Произвольная роль приводится к user, admin сохраняется.
	user, _, err := service.RegisterUser(context.Background(), RegisterInput{
		Username: "manager", Email: "m@example.com",
		Password: "secret123", PasswordConfirmation: "secret123",
		Role: "manager",
	})
	if err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}
	if user.Role != models.RoleUser {
		t.Fatalf("роль %q должна приводиться к user", "manager")
	}

	admin, _, err := service.RegisterUser(context.Background(), RegisterInput{
		Username: "boss", Email: "boss@example.com",
		Password: "secret123", PasswordConfirmation: "secret123",
		Role: models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("ошибка регистрации администратора: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Fatal("роль admin не сохранилась")
	}
}

func TestRegisterUser_Validation(t *testing.T) {
	service, _, _ := newTestAuthService()

	_, _, err := service.RegisterUser(context.Background(), RegisterInput{
		Email:                "bad@example.com",
		Password:             "short",
		PasswordConfirmation: "other",
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ожидалась ошибка валидации, получено: %v", err)
	}
	for _, field := range []string{"username", "password", "password_confirmation"} {
		if len(verr.Fields[field]) == 0 {
			t.Errorf("нет ошибки по полю %s", field)
		}
	}
}

func TestRegisterUser_Duplicate(t *testing.T) {
	service, _, _ := newTestAuthService()

	input := RegisterInput{
		Username: "dup", Email: "dup@example.com",
		Password: "secret123", PasswordConfirmation: "secret123",
	}
	if _, _, err := service.RegisterUser(context.Background(), input); err != nil {
		t.Fatalf("первая регистрация должна пройти: %v", err)
	}

	_, _, err := service.RegisterUser(context.Background(), input)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ожидалась ошибка валидации при дубликате, получено: %v", err)
	}
	if len(verr.Fields["email"]) == 0 {
		t.Fatal("нет ошибки по полю email при дубликате")
	}
}

func TestLoginUser(t *testing.T) {
	service, _, _ := newTestAuthService()

	_, _, err := service.RegisterUser(context.Background(), RegisterInput{
		Username: "login", Email: "login@example.com",
		Password: "secret123", PasswordConfirmation: "secret123",
	})
	if err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}

	user, token, err := service.LoginUser(context.Background(), "login@example.com", "secret123")
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}
	if token == "" || user.Username != "login" {
		t.Fatal("токен не выдан или вернулся не тот пользователь")
	}

	if _, _, err := service.LoginUser(context.Background(), "login@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("неверный пароль: ожидалась ErrInvalidCredentials, получено %v", err)
	}
	if _, _, err := service.LoginUser(context.Background(), "ghost@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("неизвестный email: ожидалась ErrInvalidCredentials, получено %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	service, _, _ := newTestAuthService()

	_, token, err := service.RegisterUser(context.Background(), RegisterInput{
		Username: "bye", Email: "bye@example.com",
		Password: "secret123", PasswordConfirmation: "secret123",
	})
	if err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}

	if _, err := service.ResolveToken(context.Background(), token); err != nil {
		t.Fatalf("свежий токен должен резолвиться: %v", err)
	}

	if err := service.Logout(context.Background(), token); err != nil {
		t.Fatalf("ошибка выхода: %v", err)
	}
	if _, err := service.ResolveToken(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("после выхода ожидалась ErrInvalidToken, получено %v", err)
	}

	// Повторный выход с тем же токеном — no-op, без ошибки.
	if err := service.Logout(context.Background(), token); err != nil {
		t.Fatalf("повторный выход не должен падать: %v", err)
	}
}
