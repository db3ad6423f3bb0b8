package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/biteshare/internal/flagx"
)

// parseFlags populates Config from the subset of args this package owns.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-f", "-w", "-t", "-l", "-s", "-a"}, "-s")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.DBFile, "f", cfg.DBFile, "database file name")
	fs.DurationVar(&cfg.AuthCheckDelay, "w", cfg.AuthCheckDelay, "authentication check delay")
	fs.DurationVar(&cfg.LoginDelay, "t", cfg.LoginDelay, "artificial login delay")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.SeedDemo, "s", cfg.SeedDemo, "seed demo data")
	fs.Int64Var(&cfg.MaxAttachmentSize, "a", cfg.MaxAttachmentSize, "max attachment size in bytes")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
