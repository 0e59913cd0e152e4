// Package appconf holds the runtime configuration of the dashboard server.
package appconf

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env flag to an Environment. Unknown values
// are treated as development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for the dashboard server.
type Config struct {
	Host        string
	Port        int
	Env         Environment
	LogLevel    string
	ApiKeys     []string
	RateLimit   int
	Simulate    bool
	RefreshSpec string
	Users       map[string]string
	SessionTTL  time.Duration
	BcryptCost  int
}

// Default values for a local run.
const (
	DefaultPort       = 8050
	DefaultRateLimit  = 100
	DefaultSessionTTL = 8 * time.Hour
)

// Defaults returns a Config usable for local development.
func Defaults() Config {
	return Config{
		Host:       "0.0.0.0",
		Port:       DefaultPort,
		Env:        Development,
		LogLevel:   "info",
		ApiKeys:    []string{"test"},
		RateLimit:  DefaultRateLimit,
		Simulate:   true,
		SessionTTL: DefaultSessionTTL,
	}
}

// Addr is the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsProduction reports whether debug surfaces must be hidden.
func (c Config) IsProduction() bool {
	return c.Env == Production
}

// SplitList splits a comma separated flag value, trimming blanks.
func SplitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ParseUsers parses "user:password,user2:password2" into a map.
func ParseUsers(value string) (map[string]string, error) {
	users := make(map[string]string)
	for _, pair := range SplitList(value) {
		name, password, ok := strings.Cut(pair, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" || password == "" {
			return nil, fmt.Errorf("invalid user entry %q: expected user:password", pair)
		}
		if _, dup := users[name]; dup {
			return nil, fmt.Errorf("duplicate user %q", name)
		}
		users[name] = password
	}
	return users, nil
}

// ApplyEnvironment overrides config fields from environment variables. PORT
// wins over the -port flag, as on the hosting platform.
func ApplyEnvironment(cfg *Config, getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}

	if port := getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return fmt.Errorf("invalid PORT %q", port)
		}
		cfg.Port = p
	}

	if host := getenv("HOST"); host != "" {
		cfg.Host = host
	}

	if keys := getenv("DASHBOARD_API_KEYS"); keys != "" {
		cfg.ApiKeys = SplitList(keys)
	}

	if users := getenv("DASHBOARD_USERS"); users != "" {
		parsed, err := ParseUsers(users)
		if err != nil {
			return fmt.Errorf("DASHBOARD_USERS: %w", err)
		}
		cfg.Users = parsed
	}

	if level := getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return nil
}
