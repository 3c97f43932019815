package config

import (
	"log"
	"os"

	"github.com/spf13/pflag"
)

type Config struct {
	Port       string
	APIBaseURL string
	SessionDB  string
	LogFile    string
	TplDir     string
}

// Load resolves configuration from environment variables with command-line
// flag overrides. Flags win over env, env wins over defaults.
func Load(args []string) Config {
	cfg := Config{
		Port:       envOr("PORT", "8081"),
		APIBaseURL: envOr("CATALOG_API_URL", "http://localhost:8080"),
		SessionDB:  envOr("SESSION_DB", "console-session.db"),
		LogFile:    envOr("LOG_FILE", "./console.log"),
		TplDir:     envOr("TEMPLATE_DIR", "./web/templates"),
	}

	fs := pflag.NewFlagSet("console", pflag.ExitOnError)
	fs.StringVar(&cfg.Port, "port", cfg.Port, "listen port")
	fs.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "catalogue API base URL")
	fs.StringVar(&cfg.SessionDB, "session-db", cfg.SessionDB, "sqlite file for the durable session")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log sink (empty for stdout only)")
	fs.StringVar(&cfg.TplDir, "templates", cfg.TplDir, "template directory")
	_ = fs.Parse(args)

	log.Printf("[config] PORT=%s CATALOG_API_URL=%s SESSION_DB=%s LOG_FILE=%s", cfg.Port, cfg.APIBaseURL, cfg.SessionDB, cfg.LogFile)
	return cfg
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
