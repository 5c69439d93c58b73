package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig — корневая структура конфигурации.
// Она зеркалит структуру config.yaml.
type AppConfig struct {
	MB              MBConfig        `yaml:"mb"`
	ImageProcessing ImageProcConfig `yaml:"image_processing"`
	App             AppSpecific     `yaml:"app"`
}

// MBConfig — настройки клиента MusicBrainz API.
type MBConfig struct {
	BaseURL     string `yaml:"base_url"`     // Базовый URL WS/2 API
	CoverartURL string `yaml:"coverart_url"` // Базовый URL Cover Art Archive
	UserAgent   string `yaml:"user_agent"`   // Идентификатор приложения для MB
	MaxRetries  int    `yaml:"max_retries"`  // Макс. повторов при 503
	Timeout     string `yaml:"timeout"`      // Timeout для HTTP запросов (например, "30s")

	// Отключает локальный rate limiter. По умолчанию лимитер включен
	// (burst 5, 1 запрос/сек — гайдлайны MusicBrainz).
	DisableRateLimit bool `yaml:"disable_rate_limit"`
}

// GetDefaults возвращает дефолтные значения для незаполненных полей.
func (c *MBConfig) GetDefaults() MBConfig {
	result := *c // Копируем текущие значения

	if result.BaseURL == "" {
		result.BaseURL = "http://musicbrainz.org/ws/2"
	}
	if result.CoverartURL == "" {
		result.CoverartURL = "http://coverartarchive.org"
	}
	if result.UserAgent == "" {
		result.UserAgent = "musicbrainz-go/0.1.0 (https://github.com/ilkoid/musicbrainz-go)"
	}
	if result.MaxRetries == 0 {
		result.MaxRetries = 10
	}
	if result.Timeout == "" {
		result.Timeout = "30s"
	}

	return result
}

// ParseTimeout разбирает Timeout в time.Duration (с учетом дефолтов).
func (c *MBConfig) ParseTimeout() (time.Duration, error) {
	return time.ParseDuration(c.GetDefaults().Timeout)
}

// ImageProcConfig — настройки обработки обложек (coverart-util).
type ImageProcConfig struct {
	MaxWidth int `yaml:"max_width"`
	Quality  int `yaml:"quality"`
}

// GetDefaults возвращает дефолтные значения для незаполненных полей.
func (c *ImageProcConfig) GetDefaults() ImageProcConfig {
	result := *c

	if result.MaxWidth == 0 {
		result.MaxWidth = 500
	}
	if result.Quality == 0 {
		result.Quality = 85
	}

	return result
}

// AppSpecific — общие настройки приложения.
type AppSpecific struct {
	Debug bool `yaml:"debug"`
}

// Load читает YAML файл, подставляет ENV переменные и возвращает готовую структуру.
func Load(path string) (*AppConfig, error) {
	// 1. Проверяем существование файла
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found at: %s", path)
	}

	// 2. Читаем файл целиком
	rawBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Подставляем переменные окружения.
	// os.ExpandEnv заменяет ${VAR} или $VAR на значение из системы.
	contentWithEnv := os.ExpandEnv(string(rawBytes))

	// 4. Парсим YAML в структуру
	var cfg AppConfig
	if err := yaml.Unmarshal([]byte(contentWithEnv), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	// 5. Валидируем критические настройки
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// validate проверяет корректность критических полей.
func (c *AppConfig) validate() error {
	if c.MB.Timeout != "" {
		if _, err := time.ParseDuration(c.MB.Timeout); err != nil {
			return fmt.Errorf("mb.timeout is not a valid duration: %w", err)
		}
	}
	if c.MB.MaxRetries < 0 {
		return fmt.Errorf("mb.max_retries must not be negative")
	}
	if c.ImageProcessing.Quality < 0 || c.ImageProcessing.Quality > 100 {
		return fmt.Errorf("image_processing.quality must be between 0 and 100")
	}
	return nil
}
