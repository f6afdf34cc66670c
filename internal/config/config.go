package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	envLedgerPath       = "CHECKOUT_LEDGER_PATH"
	envCounter1MaxItems = "CHECKOUT_COUNTER1_MAX_ITEMS"
	envCounter2MaxItems = "CHECKOUT_COUNTER2_MAX_ITEMS"
	envCounter3MaxItems = "CHECKOUT_COUNTER3_MAX_ITEMS"
	envRejectDuplicates = "CHECKOUT_REJECT_DUPLICATE_IDS"
	envLogLevel         = "CHECKOUT_LOG_LEVEL"

	DefaultLedgerPath = "customer_data.txt"
	DefaultMaxItems   = 5
)

type Config struct {
	LedgerPath         string
	Counter1MaxItems   int
	Counter2MaxItems   int
	Counter3MaxItems   int
	RejectDuplicateIDs bool
	LogLevel           zapcore.Level

	// EnvFile is the dotenv file that was applied, empty if none was found.
	EnvFile string
}

// Load applies the first readable dotenv file and reads settings from the
// environment. Variables already set in the environment win over the file.
// Without explicit files, .env is looked up in the working directory and its
// two parents.
func Load(envFiles ...string) (Config, error) {
	envFile, err := loadEnv(envFiles)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		LedgerPath: getenv(envLedgerPath, DefaultLedgerPath),
		EnvFile:    envFile,
	}

	if cfg.Counter1MaxItems, err = atoienv(envCounter1MaxItems, DefaultMaxItems); err != nil {
		return Config{}, err
	}
	if cfg.Counter2MaxItems, err = atoienv(envCounter2MaxItems, DefaultMaxItems); err != nil {
		return Config{}, err
	}
	if cfg.Counter3MaxItems, err = atoienv(envCounter3MaxItems, DefaultMaxItems); err != nil {
		return Config{}, err
	}
	if cfg.RejectDuplicateIDs, err = boolenv(envRejectDuplicates, false); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel, err = zapcore.ParseLevel(getenv(envLogLevel, "info")); err != nil {
		return Config{}, fmt.Errorf("%s: %w", envLogLevel, err)
	}

	return cfg, nil
}

func loadEnv(envFiles []string) (string, error) {
	if len(envFiles) > 0 {
		for _, path := range envFiles {
			if err := godotenv.Load(path); err != nil {
				return "", fmt.Errorf("failed to load env file %s: %w", path, err)
			}
		}
		return envFiles[0], nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	possiblePaths := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		err := godotenv.Load(envPath)
		if err == nil {
			return envPath, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to load env file %s: %w", envPath, err)
		}
	}

	return "", nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) (int, error) {
	v := getenv(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}

func boolenv(key string, def bool) (bool, error) {
	v := getenv(key, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}
