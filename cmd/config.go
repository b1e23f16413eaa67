package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when present; a missing default file is not an error.
const DefaultEnvFile = ".env"

type (
	Config struct {
		PizzaAPI PizzaAPI `env-prefix:"PIZZA_API_"`
		Logger   Logger   `env-prefix:"LOGGER_"`
		Env      string   `                        env:"ENV" env-default:"local" validate:"oneof=local dev prod"`
	}

	PizzaAPI struct {
		BaseURL        string        `env:"BASE_URL"        env-default:"https://order.dominos.ca" validate:"required,url"`
		ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" env-default:"10s"                      validate:"gte=100ms,lte=2m"`
		ReadTimeout    time.Duration `env:"READ_TIMEOUT"    env-default:"10s"                      validate:"gte=100ms,lte=2m"`
		UserAgent      string        `env:"USER_AGENT"      env-default:"pizza-order/1.0"`
	}

	Logger struct {
		Level      string `env:"LEVEL"       env-default:"info"                   validate:"oneof=debug info warn error"`
		Filename   string `env:"FILENAME"    env-default:"./logs/pizza-order.log" validate:"required"`
		MaxSize    int    `env:"MAX_SIZE"    env-default:"10"                     validate:"min=1,max=1000"`
		MaxBackups int    `env:"MAX_BACKUPS" env-default:"3"                      validate:"min=0,max=20"`
		MaxAge     int    `env:"MAX_AGE"     env-default:"28"                     validate:"min=1,max=365"`
		Console    bool   `env:"CONSOLE"     env-default:"false"`
	}
)

// LoadConfig reads envFile into the process environment without overriding
// variables that are already set, then builds and validates the Config.
// An explicitly named envFile must exist.
func LoadConfig(envFile string) (Config, error) {
	const op = "cmd.LoadConfig"

	if err := loadEnvFile(envFile); err != nil {
		return Config{}, fmt.Errorf("%s: %w", op, err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("%s: read env: %w", op, err)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, fmt.Errorf("%s: config validation: %w", op, err)
	}

	return cfg, nil
}

func loadEnvFile(envFile string) error {
	path := envFile
	if path == "" {
		path = DefaultEnvFile
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && envFile == "" {
			return nil
		}
		return fmt.Errorf("env file %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func validateConfig(cfg Config) error {
	err := validator.New().Struct(&cfg)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, ve := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s=%v must satisfy '%s'", ve.Namespace(), ve.Value(), ve.Tag()))
	}
	return errors.New(strings.Join(messages, "; "))
}
