package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Variant - производный вариант врага: клон шаблона, умноженный на Factor
type Variant struct {
	Name   string  `yaml:"name"`
	Factor float64 `yaml:"factor"`
}

// Config хранит параметры запуска демо
type Config struct {
	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"` // "json" | "text"

	// CatalogDir - папка с YAML-темами; пусто = только встроенные
	CatalogDir string `yaml:"catalogDir"`
	// Theme - тема для пресетов директора
	Theme string `yaml:"theme"`

	Variants []Variant `yaml:"variants"`
}

// Default - конфиг по умолчанию
func Default() Config {
	return Config{
		LogLevel:   "info",
		LogFormat:  "text",
		CatalogDir: "",
		Theme:      "fire",
		Variants: []Variant{
			{Name: "Elite", Factor: 2.0},
			{Name: "Champion", Factor: 5.0},
			{Name: "King", Factor: 10.0},
		},
	}
}

func loadYAML(path string, into *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, into); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func getenv(k, fallback string) string {
	if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

// Load собирает конфиг по слоям: значения по умолчанию, YAML-файл
// (если существует), переменные окружения BESTIARY_*, флаги из args.
// Путь к файлу можно переопределить флагом -config.
func Load(path string, args []string) (Config, error) {
	fs := flag.NewFlagSet("bestiary", flag.ContinueOnError)
	configPath := fs.String("config", path, "Path to config YAML")
	level := fs.String("log-level", "", "Log level (debug/info/warn/error)")
	format := fs.String("log-format", "", "Log format (text/json)")
	catalogDir := fs.String("catalogs", "", "Directory with YAML theme catalogs")
	theme := fs.String("theme", "", "Theme used by director presets")
	variants := fs.String("variants", "", "Variants as Name=factor,Name=factor")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default()

	// YAML (если файл существует)
	if p := strings.TrimSpace(*configPath); p != "" {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			if err := loadYAML(p, &cfg); err != nil {
				return Config{}, err
			}
		} else if p != path {
			// Явно переданный флагом файл обязан существовать
			return Config{}, fmt.Errorf("config file %s: not found", p)
		}
	}

	// ENV overrides
	cfg.LogLevel = getenv("BESTIARY_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getenv("BESTIARY_LOG_FORMAT", cfg.LogFormat)
	cfg.CatalogDir = getenv("BESTIARY_CATALOG_DIR", cfg.CatalogDir)
	cfg.Theme = getenv("BESTIARY_THEME", cfg.Theme)
	if v := getenv("BESTIARY_VARIANTS", ""); v != "" {
		parsed, err := ParseVariants(v)
		if err != nil {
			return Config{}, fmt.Errorf("BESTIARY_VARIANTS: %w", err)
		}
		cfg.Variants = parsed
	}

	// Flags overrides (только заданные)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = strings.TrimSpace(*level)
		case "log-format":
			cfg.LogFormat = strings.TrimSpace(*format)
		case "catalogs":
			cfg.CatalogDir = strings.TrimSpace(*catalogDir)
		case "theme":
			cfg.Theme = strings.TrimSpace(*theme)
		}
	})
	if strings.TrimSpace(*variants) != "" {
		parsed, err := ParseVariants(*variants)
		if err != nil {
			return Config{}, fmt.Errorf("-variants: %w", err)
		}
		cfg.Variants = parsed
	}

	return cfg, cfg.Validate()
}

// ParseVariants разбирает строку вида "Elite=2,Champion=5".
func ParseVariants(s string) ([]Variant, error) {
	var out []Variant
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, raw, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("variant %q: expected Name=factor", part)
		}
		factor, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("variant %q: %w", part, err)
		}
		out = append(out, Variant{Name: strings.TrimSpace(name), Factor: factor})
	}
	return out, nil
}

// Validate проверяет итоговый конфиг.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Theme) == "" {
		errs = append(errs, errors.New("theme must not be empty"))
	}
	for _, v := range c.Variants {
		if strings.TrimSpace(v.Name) == "" {
			errs = append(errs, errors.New("variant name must not be empty"))
		}
		if !(v.Factor > 0) {
			errs = append(errs, fmt.Errorf("variant %q: factor must be positive, got %v", v.Name, v.Factor))
		}
	}
	return errors.Join(errs...)
}
