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

type Config struct {
	Debug    bool
	TestMode bool
	Env      string
	Build    string
	AppName  string

	FrontendBaseURL  string
	DefaultFromEmail mail.Address
	AdminEmail       string
	SendgridAPIKey   string
	RollbarToken     string

	WorkDir string

	Server struct {
		Host            string
		Addr            string
		DebugAddr       string
		AdminAPIKey     string
		ShutdownTimeout time.Duration
	}

	Data struct {
		Dir string
	}

	Database struct {
		Engine        string // "jsonfile" (default) | "postgres"
		Name          string
		Host          string
		Port          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		DisableTLS    bool
	}

	Firestore struct {
		CredentialsFile string
		ProjectID       string
	}
}

func (c *Config) DatabaseAddress() string {
	return c.Database.Host + ":" + c.Database.Port
}

func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Zyra WorkHub")
	v.SetDefault("build", "dev")
	v.SetDefault("frontendBaseUrl", "https://zyraworkhub.web.app")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("adminEmail", "")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("serverHost", "127.0.0.1")
	v.SetDefault("serverAddr", ":4000")
	v.SetDefault("serverDebugAddr", ":4040")
	v.SetDefault("adminApiKey", "")
	v.SetDefault("shutdownTimeout", 5*time.Second)
	v.SetDefault("dataDir", "")
	v.SetDefault("databaseEngine", "jsonfile")
	v.SetDefault("databaseName", "zyra")
	v.SetDefault("databaseHost", "localhost")
	v.SetDefault("databasePort", "5432")
	v.SetDefault("databaseUser", "")
	v.SetDefault("databasePassword", "")
	v.SetDefault("databaseAdminUser", "")
	v.SetDefault("databaseAdminPassword", "")
	v.SetDefault("databaseDisableTls", false)
	v.SetDefault("firestoreCredentialsFile", "")
	v.SetDefault("firestoreProjectId", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	var testMode bool
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
	}
	v.SetEnvPrefix(env)

	wd := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Debug:           v.GetBool("debug"),
		TestMode:        testMode,
		Env:             env,
		Build:           v.GetString("build"),
		AppName:         v.GetString("appName"),
		FrontendBaseURL: v.GetString("frontendBaseUrl"),
		DefaultFromEmail: mail.Address{
			Name:    v.GetString("appName"),
			Address: v.GetString("defaultFromEmail"),
		},
		AdminEmail:     v.GetString("adminEmail"),
		SendgridAPIKey: v.GetString("sendgridApiKey"),
		RollbarToken:   v.GetString("rollbarToken"),
		WorkDir:        wd,
	}
	conf.Server.Host = v.GetString("serverHost")
	conf.Server.Addr = v.GetString("serverAddr")
	conf.Server.DebugAddr = v.GetString("serverDebugAddr")
	conf.Server.AdminAPIKey = v.GetString("adminApiKey")
	conf.Server.ShutdownTimeout = v.GetDuration("shutdownTimeout")
	conf.Data.Dir = v.GetString("dataDir")
	if conf.Data.Dir == "" {
		conf.Data.Dir = filepath.Join(wd, "data")
	}
	conf.Database.Engine = v.GetString("databaseEngine")
	conf.Database.Name = v.GetString("databaseName")
	conf.Database.Host = v.GetString("databaseHost")
	conf.Database.Port = v.GetString("databasePort")
	conf.Database.User = v.GetString("databaseUser")
	conf.Database.Password = v.GetString("databasePassword")
	conf.Database.AdminUser = v.GetString("databaseAdminUser")
	conf.Database.AdminPassword = v.GetString("databaseAdminPassword")
	conf.Database.DisableTLS = v.GetBool("databaseDisableTls")
	conf.Firestore.CredentialsFile = v.GetString("firestoreCredentialsFile")
	conf.Firestore.ProjectID = v.GetString("firestoreProjectId")
	return conf
}
