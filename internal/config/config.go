package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates everything the service reads from the environment.
type Config struct {
	Server      ServerConfig
	Gateway     GatewayConfig
	Bot         BotConfig
	DatabaseURL string
}

type ServerConfig struct {
	Addr string
}

type GatewayConfig struct {
	BaseURL string
	Token   string
}

type BotConfig struct {
	OpenHour      int
	CloseHour     int
	StartKeywords []string
	MenuFile      string
	ReplyDelay    time.Duration
}

func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	gateway, err := loadGatewayConfig()
	if err != nil {
		return nil, err
	}

	bot, err := loadBotConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:      server,
		Gateway:     gateway,
		Bot:         bot,
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
	}, nil
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "3000"
	}

	if strings.Contains(port, ":") {
		// Allow ":3000" or "127.0.0.1:3000" directly.
		return ServerConfig{Addr: port}, nil
	}

	if _, err := strconv.Atoi(port); err != nil {
		return ServerConfig{}, fmt.Errorf("invalid PORT value %q: %w", port, err)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

func loadGatewayConfig() (GatewayConfig, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("GATEWAY_URL")), "/")
	if baseURL == "" {
		return GatewayConfig{}, fmt.Errorf("GATEWAY_URL is not set")
	}

	return GatewayConfig{
		BaseURL: baseURL,
		Token:   strings.TrimSpace(os.Getenv("GATEWAY_TOKEN")),
	}, nil
}

func loadBotConfig() (BotConfig, error) {
	openHour, err := parseHourEnv("OPEN_HOUR", 18)
	if err != nil {
		return BotConfig{}, err
	}

	closeHour, err := parseHourEnv("CLOSE_HOUR", 0)
	if err != nil {
		return BotConfig{}, err
	}

	delayMS, err := parseOptionalIntEnv("REPLY_DELAY_MS")
	if err != nil {
		return BotConfig{}, err
	}
	delay := time.Second
	if delayMS != nil {
		if *delayMS < 0 {
			return BotConfig{}, fmt.Errorf("REPLY_DELAY_MS must not be negative")
		}
		delay = time.Duration(*delayMS) * time.Millisecond
	}

	return BotConfig{
		OpenHour:      openHour,
		CloseHour:     closeHour,
		StartKeywords: splitKeywords(os.Getenv("START_KEYWORDS")),
		MenuFile:      getEnvOrDefault("MENU_FILE", "./cardapio.pdf"),
		ReplyDelay:    delay,
	}, nil
}

// splitKeywords parses a comma-separated keyword list; empty input means
// the built-in defaults apply.
func splitKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var out []string
	for _, k := range strings.Split(raw, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}

func parseHourEnv(key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	if val < 0 || val > 23 {
		return 0, fmt.Errorf("invalid %s value %d: hour must be 0-23", key, val)
	}
	return val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
