package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug   bool
		Env     string
		AppName string
		Build   string

		DefaultFromEmail mail.Address
		AdvisoryEmail    string
		SendgridAPIKey   string
		RollbarToken     string
		FrontendBaseURL  string

		Server   ServerConfig
		Database DatabaseConfig
	}

	ServerConfig struct {
		Host            string
		Addr            string
		DebugHost       string
		ShutdownTimeout time.Duration
	}

	DatabaseConfig struct {
		URI     string
		Name    string
		Timeout time.Duration
	}
)

// NewConfig loads the app configuration from the environment.
// An optional `config/.env.<env>` file is loaded first if it exists.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "ProjTrack")
	conf.SetDefault("build", "dev")
	conf.SetDefault("defaultFromEmail", "noreply@localhost")
	conf.SetDefault("advisoryEmail", "")
	conf.SetDefault("frontendBaseURL", "http://localhost:3000")
	conf.SetDefault("server.host", "localhost")
	conf.SetDefault("server.addr", ":5001")
	conf.SetDefault("server.debugHost", "localhost:6060")
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("database.uri", "mongodb://localhost:27017")
	conf.SetDefault("database.name", "projtrack")
	conf.SetDefault("database.timeout", 10*time.Second)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	appName := conf.GetString("appName")
	return &Config{
		Debug:            conf.GetBool("debug"),
		Env:              env,
		AppName:          appName,
		Build:            conf.GetString("build"),
		DefaultFromEmail: mail.Address{Name: appName, Address: conf.GetString("defaultFromEmail")},
		AdvisoryEmail:    conf.GetString("advisoryEmail"),
		SendgridAPIKey:   conf.GetString("sendgridApiKey"),
		RollbarToken:     conf.GetString("rollbarToken"),
		FrontendBaseURL:  conf.GetString("frontendBaseURL"),
		Server: ServerConfig{
			Host:            conf.GetString("server.host"),
			Addr:            conf.GetString("server.addr"),
			DebugHost:       conf.GetString("server.debugHost"),
			ShutdownTimeout: conf.GetDuration("server.shutdownTimeout"),
		},
		Database: DatabaseConfig{
			URI:     conf.GetString("database.uri"),
			Name:    conf.GetString("database.name"),
			Timeout: conf.GetDuration("database.timeout"),
		},
	}
}

// Getwd returns the app's root directory.
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("config.os.Getwd(): %v", err)
	}
	return wd
}
