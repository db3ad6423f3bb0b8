package config

import (
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	DataDir        string
	DBFile         string
	AuthCheckDelay time.Duration
	LoginDelay     time.Duration
	SeedDemo       bool
	LogLevel       string
	// MaxAttachmentSize caps verification uploads, in bytes.
	MaxAttachmentSize int64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = ".biteshare"
	c.DBFile = "biteshare.db"
	c.AuthCheckDelay = 500 * time.Millisecond
	c.LoginDelay = time.Second
	c.SeedDemo = true
	c.LogLevel = "info"
	c.MaxAttachmentSize = 5 << 20
}

// DBPath joins the data directory and the database file name.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// LoadConfig builds a Config from the process arguments and environment.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load applies defaults, environment, JSON and flags in that order. It panics
// on malformed input, matching flag.PanicOnError semantics.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
