package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "BITESHARE_"

// parseEnv overlays BITESHARE_* variables. A .env file in the working
// directory is loaded first when present; variables already set in the real
// environment win over it.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := lookup("DATA_DIR"); ok {
		cfg.DataDir = v
	}
	if v, ok := lookup("DB_FILE"); ok {
		cfg.DBFile = v
	}
	if v, ok := lookup("AUTH_CHECK_DELAY"); ok {
		cfg.AuthCheckDelay = mustDuration(v)
	}
	if v, ok := lookup("LOGIN_DELAY"); ok {
		cfg.LoginDelay = mustDuration(v)
	}
	if v, ok := lookup("SEED_DEMO"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		cfg.SeedDemo = b
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("MAX_ATTACHMENT_SIZE"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			panic(err)
		}
		cfg.MaxAttachmentSize = n
	}
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func mustDuration(v string) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	return d
}
