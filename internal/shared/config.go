package shared

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Driver string `yaml:"driver"` // "sqlite" (default)
		DSN    string `yaml:"dsn"`    // "./fwrisk.db"
	} `yaml:"database"`

	Analysis struct {
		Sources   []string `yaml:"sources"`    // ["./exports"]
		RulesPack string   `yaml:"rules_pack"` // optional YAML DSL pack
	} `yaml:"analysis"`

	Rules struct {
		SeverityThreshold string   `yaml:"severity_threshold"` // "low" (default)
		Disabled          []string `yaml:"disabled"`
	} `yaml:"rules"`

	Reporting struct {
		OutDir string `yaml:"out_dir"` // "./reports"
	} `yaml:"reporting"`

	Server struct {
		Addr           string   `yaml:"addr"`            // ":8080"
		AllowedOrigins []string `yaml:"allowed_origins"` // ["*"]
		SessionHours   int      `yaml:"session_hours"`   // 12
	} `yaml:"server"`

	Logging struct {
		Format string `yaml:"format"` // "json"|"text"
		Level  string `yaml:"level"`  // "info"|"debug"|"warn"|"error"
	} `yaml:"logging"`
}

func DefaultConfig() Config {
	var c Config
	c.Database.Driver = "sqlite"
	c.Database.DSN = "./fwrisk.db"
	c.Rules.SeverityThreshold = "low"
	c.Reporting.OutDir = "./reports"
	c.Server.Addr = ":8080"
	c.Server.SessionHours = 12
	c.Logging.Format = "json"
	c.Logging.Level = "info"
	return c
}

func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path != "" {
		if b, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(b, &c)
		}
	}
	// Env overrides (simple, explicit)
	if v := os.Getenv("FWRISK_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("FWRISK_SEVERITY_THRESHOLD"); v != "" {
		c.Rules.SeverityThreshold = v
	}
	if v := os.Getenv("FWRISK_DISABLED_RULES"); v != "" {
		c.Rules.Disabled = strings.Split(v, ",")
	}
	if v := os.Getenv("FWRISK_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("FWRISK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("FWRISK_OUT_DIR"); v != "" {
		c.Reporting.OutDir = v
	}
	if v := os.Getenv("FWRISK_ADDR"); v != "" {
		c.Server.Addr = v
	}
	return c, nil
}

// DisabledSet normalizes the disabled-rule list to an upper-cased lookup.
func (c Config) DisabledSet() map[string]bool {
	out := map[string]bool{}
	for _, id := range c.Rules.Disabled {
		id = strings.ToUpper(strings.TrimSpace(id))
		if id != "" {
			out[id] = true
		}
	}
	return out
}
