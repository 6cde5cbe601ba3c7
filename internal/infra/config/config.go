package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config содержит параметры конфигурации приложения.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
	} `yaml:"server"`
	TelegramBot struct {
		Token           string `yaml:"token"`
		AdminID         int64  `yaml:"admin_id"`
		ChannelUsername string `yaml:"channel_username"`
		ChannelURL      string `yaml:"channel_url"`
	} `yaml:"telegram_bot"`
	Database struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"dbname"`
	} `yaml:"database"`
	State struct {
		Storage    string `yaml:"storage"` // "memory" или "redis"
		RedisAddr  string `yaml:"redis_addr"`
		TTLMinutes int    `yaml:"ttl_minutes"` // только для redis; 0 — без истечения
	} `yaml:"state"`
	Assets struct {
		WelcomePhoto string `yaml:"welcome_photo"`
		DietPDF      string `yaml:"diet_pdf"`
	} `yaml:"assets"`
	Broadcast struct {
		SendDelayMs int `yaml:"send_delay_ms"`
	} `yaml:"broadcast"`
	Debug bool `yaml:"debug"`
}

// LoadConfig загружает конфигурацию из yaml-файла. Секреты можно переопределить
// переменными окружения (в том числе из файла .env, если он существует):
// TELEGRAM_BOT_TOKEN, ADMIN_ID, DATABASE_PASSWORD.
func LoadConfig(filename string) (*Config, error) {
	// Загружаем переменные окружения из файла .env (если файл существует).
	_ = godotenv.Load()

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			fmt.Println("f.Close() failed ", err)
		}
	}(f)

	config := &Config{}
	if err := yaml.NewDecoder(f).Decode(config); err != nil {
		return nil, err
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		config.TelegramBot.Token = token
	}
	if adminStr := os.Getenv("ADMIN_ID"); adminStr != "" {
		if id, err := strconv.ParseInt(adminStr, 10, 64); err == nil {
			config.TelegramBot.AdminID = id
		}
	}
	if password := os.Getenv("DATABASE_PASSWORD"); password != "" {
		config.Database.Password = password
	}

	if config.TelegramBot.Token == "" {
		return nil, fmt.Errorf("токен бота не задан ни в конфигурации, ни в TELEGRAM_BOT_TOKEN")
	}
	if config.State.Storage == "" {
		config.State.Storage = "memory"
	}
	if config.Broadcast.SendDelayMs == 0 {
		config.Broadcast.SendDelayMs = 100
	}

	return config, nil
}
