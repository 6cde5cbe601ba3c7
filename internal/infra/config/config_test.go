package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "values.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("не удалось записать файл конфигурации: %v", err)
	}
	return path
}

// TestLoadConfig проверяет чтение yaml-конфигурации и значения по умолчанию.
func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
server:
  host: "0.0.0.0"
  port: "8001"
telegram_bot:
  token: "test-token"
  admin_id: 42
  channel_username: "@channel"
  channel_url: "https://t.me/channel"
database:
  host: "localhost"
  port: "5432"
  user: "postgres"
  password: "secret"
  dbname: "ketobot"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig вернул ошибку: %v", err)
	}

	if cfg.TelegramBot.Token != "test-token" || cfg.TelegramBot.AdminID != 42 {
		t.Errorf("секция telegram_bot прочитана неверно: %+v", cfg.TelegramBot)
	}
	if cfg.Server.Port != "8001" {
		t.Errorf("секция server прочитана неверно: %+v", cfg.Server)
	}
	if cfg.Database.Name != "ketobot" {
		t.Errorf("секция database прочитана неверно: %+v", cfg.Database)
	}

	// Значения по умолчанию для незаполненных секций.
	if cfg.State.Storage != "memory" {
		t.Errorf("ожидалось хранилище memory по умолчанию, получено %q", cfg.State.Storage)
	}
	if cfg.Broadcast.SendDelayMs != 100 {
		t.Errorf("ожидалась пауза 100 мс по умолчанию, получено %d", cfg.Broadcast.SendDelayMs)
	}
}

// TestLoadConfigEnvOverrides проверяет переопределение секретов
// переменными окружения.
func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
telegram_bot:
  token: "from-file"
  admin_id: 1
`)

	t.Setenv("TELEGRAM_BOT_TOKEN", "from-env")
	t.Setenv("ADMIN_ID", "99")
	t.Setenv("DATABASE_PASSWORD", "env-secret")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig вернул ошибку: %v", err)
	}

	if cfg.TelegramBot.Token != "from-env" {
		t.Errorf("токен должен браться из окружения, получено %q", cfg.TelegramBot.Token)
	}
	if cfg.TelegramBot.AdminID != 99 {
		t.Errorf("admin_id должен браться из окружения, получено %d", cfg.TelegramBot.AdminID)
	}
	if cfg.Database.Password != "env-secret" {
		t.Errorf("пароль должен браться из окружения, получено %q", cfg.Database.Password)
	}
}

// TestLoadConfigMissingToken проверяет, что без токена конфигурация
// считается невалидной.
func TestLoadConfigMissingToken(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "8001"
`)

	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("ожидалась ошибка при отсутствии токена")
	}
}
