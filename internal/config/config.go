// Package config загружает пользовательский config.json (учётка чата,
// шаблоны команд) и runtime-настройки из окружения.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/EgorLis/osunpbot/internal/format"
)

// DefaultPath — где ищем файл, если NPBOT_CONFIG не задан.
const DefaultPath = "config.json"

const defaultTimeout = 5

// ErrCreated — файла не было, записали заготовку. Её надо заполнить и перезапустить бота.
var ErrCreated = errors.New("config file created, fill in username and token")

type Sources struct {
	Tosu      bool `json:"tosu"`
	Companion bool `json:"companion"`
}

type Config struct {
	Username string `json:"username"`
	Token    string `json:"token"`
	// канал, куда заходим; пусто — канал самого аккаунта
	Channel string `json:"channel,omitempty"`
	// пауза между одинаковыми командами, секунды
	Timeout   uint64            `json:"timeout"`
	Templates map[string]string `json:"templates"`
	Sources   Sources           `json:"sources"`
}

// Default — то, что пишется в новый файл.
func Default() Config {
	return Config{
		Timeout: defaultTimeout,
		Templates: map[string]string{
			"np":   "{beatmap}",
			"pp":   "{pp}",
			"skin": "{skin}",
		},
		Sources: Sources{Tosu: true, Companion: true},
	}
}

// Load читает конфиг из path. Если файла нет, создаёт заготовку и возвращает ErrCreated.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := Save(path, Default()); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%s: %w", path, ErrCreated)
		}
		return nil, err
	}

	cfg := Default()
	cfg.Templates = nil
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Templates == nil {
		cfg.Templates = Default().Templates
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Save пишет cfg в path (с отступами, чтобы было удобно править руками).
func Save(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	b, err := json.MarshalIndent(&cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return errors.New("username is required")
	}
	if strings.TrimSpace(c.Token) == "" {
		return errors.New("token is required")
	}
	if !c.Sources.Tosu && !c.Sources.Companion {
		return errors.New("at least one source must be enabled")
	}

	templates := make(map[string]string, len(c.Templates))
	for cmd, tmpl := range c.Templates {
		key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(cmd), "!"))
		if key == "" || strings.ContainsAny(key, " \t") {
			return fmt.Errorf("bad command name %q", cmd)
		}
		if err := format.Validate(tmpl); err != nil {
			return fmt.Errorf("template %q: %w", cmd, err)
		}
		templates[key] = tmpl
	}
	c.Templates = templates
	return nil
}

// ChannelName — канал для входа: явный или имя аккаунта.
func (c *Config) ChannelName() string {
	if ch := strings.TrimSpace(c.Channel); ch != "" {
		return ch
	}
	return c.Username
}

// Template ищет шаблон команды (без "!", в нижнем регистре).
func (c *Config) Template(cmd string) (string, bool) {
	t, ok := c.Templates[cmd]
	return t, ok
}

func (c *Config) RateLimit() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
