package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/logger"
	"blogapi/internal/models"
	"blogapi/internal/repository"
	"blogapi/internal/utils"

	"go.uber.org/zap"
)

// Скрипт создаёт учётную запись администратора. Учётные данные берутся
// из окружения (ADMIN_USERNAME, ADMIN_EMAIL, ADMIN_PASSWORD), иначе
// используются значения по умолчанию для локальной разработки.
func main() {
	cfg, err := config.LoadConfig()
	logger.InitLogger()
	defer logger.Log.Sync()

	if err != nil {
		logger.Log.Fatal("Ошибка загрузки конфига", zap.Error(err))
	}

	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		logger.Log.Fatal("Ошибка подключения к базе", zap.Error(err))
	}
	defer conn.Close()

	if err := db.ApplyMigrations(conn); err != nil {
		logger.Log.Fatal("Ошибка применения миграций", zap.Error(err))
	}

	ctx := context.Background()
	users := repository.NewUserRepository(conn)

	admins, err := users.ListAdmins(ctx)
	if err != nil {
		logger.Log.Fatal("Ошибка получения списка администраторов", zap.Error(err))
	}

	if len(admins) > 0 {
		fmt.Println("Существующие администраторы:")
		for _, a := range admins {
			fmt.Printf("  #%d %s <%s>\n", a.ID, a.Username, a.Email)
		}
		fmt.Print("Создать ещё одного? [y/N]: ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Отменено.")
			return
		}
	}

	username := envOr("ADMIN_USERNAME", "admin")
	email := envOr("ADMIN_EMAIL", "admin@example.com")
	password := envOr("ADMIN_PASSWORD", "admin12345")

	taken, err := users.IsTaken(ctx, email, username)
	if err != nil {
		logger.Log.Fatal("Ошибка проверки уникальности", zap.Error(err))
	}
	if taken {
		fmt.Printf("Пользователь %s / %s уже существует, ничего не создаю.\n", username, email)
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Fatal("Ошибка хеширования пароля", zap.Error(err))
	}

	admin := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := users.CreateUser(ctx, admin); err != nil {
		logger.Log.Fatal("Ошибка создания администратора", zap.Error(err))
	}

	fmt.Printf("Администратор создан: #%d %s <%s>\n", admin.ID, admin.Username, admin.Email)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
