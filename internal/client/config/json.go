package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/biteshare/internal/flagx"
	"github.com/dmitrijs2005/biteshare/internal/timex"
)

// JsonConfig is a DTO used only for unmarshalling. Pointer fields tell an
// explicit false or zero apart from an omitted key.
type JsonConfig struct {
	DataDir           string          `json:"data_dir"`
	DBFile            string          `json:"db_file"`
	AuthCheckDelay    *timex.Duration `json:"auth_check_delay"`
	LoginDelay        *timex.Duration `json:"login_delay"`
	SeedDemo          *bool           `json:"seed_demo"`
	LogLevel          string          `json:"log_level"`
	MaxAttachmentSize *int64          `json:"max_attachment_size"`
}

// parseJson overlays cfg with the file named by -c/-config, if any. Read and
// decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DBFile != "" {
		cfg.DBFile = jc.DBFile
	}
	if jc.AuthCheckDelay != nil {
		cfg.AuthCheckDelay = jc.AuthCheckDelay.Duration
	}
	if jc.LoginDelay != nil {
		cfg.LoginDelay = jc.LoginDelay.Duration
	}
	if jc.SeedDemo != nil {
		cfg.SeedDemo = *jc.SeedDemo
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.MaxAttachmentSize != nil {
		cfg.MaxAttachmentSize = *jc.MaxAttachmentSize
	}
}
