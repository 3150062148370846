package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "forms"

type AppConfig struct {
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Forms    FormsConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string
	// FrontendURL is the allowed CORS origin, "*" for any.
	FrontendURL string
	// PublicURL is the base of shareable form links.
	PublicURL       string
	ShutdownTimeout time.Duration
}

type StorageConfig struct {
	Driver     string
	DataDir    string
	SQLitePath string
}

type DatabaseConfig struct {
	URL            string
	MigrateOnStart bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type FormsConfig struct {
	ValidateResponses bool
}

type LogConfig struct {
	Level string
}

// env aliases kept for deployments configured by bare variable names
var envAliases = map[string]string{
	"server.port":         "PORT",
	"server.frontend_url": "FRONTEND_URL",
	"server.public_url":   "PUBLIC_URL",
	"storage.data_dir":    "DATA_DIR",
	"database.url":        "DATABASE_URL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "3001")
	v.SetDefault("server.frontend_url", "*")
	v.SetDefault("server.public_url", "http://localhost:5173")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.data_dir", "data")
	v.SetDefault("storage.sqlite_path", "data/forms.db")
	v.SetDefault("database.url", "")
	v.SetDefault("database.migrate_on_start", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "formsd:")
	v.SetDefault("forms.validate_responses", false)
	v.SetDefault("log.level", "info")
}

// Load resolves configuration from, in increasing precedence: defaults, the YAML
// file (configFile, or config/formsd.yaml when present), FORMS_* environment
// variables and their bare aliases, and flags that were set explicitly.
func Load(configFile string, flags *pflag.FlagSet) (AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, alias := range envAliases {
		if err := v.BindEnv(key, envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), alias); err != nil {
			return AppConfig{}, err
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("formsd")
		v.AddConfigPath("config")
		v.AddConfigPath("/etc/formsd")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return AppConfig{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return AppConfig{}, err
		}
	}

	return AppConfig{
		Server: ServerConfig{
			Port:            v.GetString("server.port"),
			FrontendURL:     v.GetString("server.frontend_url"),
			PublicURL:       v.GetString("server.public_url"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Storage: StorageConfig{
			Driver:     v.GetString("storage.driver"),
			DataDir:    v.GetString("storage.data_dir"),
			SQLitePath: v.GetString("storage.sqlite_path"),
		},
		Database: DatabaseConfig{
			URL:            v.GetString("database.url"),
			MigrateOnStart: v.GetBool("database.migrate_on_start"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			Prefix:   v.GetString("redis.prefix"),
		},
		Forms: FormsConfig{
			ValidateResponses: v.GetBool("forms.validate_responses"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
	}, nil
}

// bindFlags maps flag "storage-driver" to key "storage.driver" and so on. Only
// flags changed on the command line override lower layers.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == "config" {
			return
		}
		key := strings.Replace(strings.ReplaceAll(f.Name, "-", "_"), "_", ".", 1)
		if f.Changed {
			err = v.BindPFlag(key, f)
		}
	})
	return err
}
