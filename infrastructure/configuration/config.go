package configuration

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/Idkwii/Cycle-youtube-analytics/infrastructure/logger"
)

type Config struct {
	App         App         `json:"app"`
	YouTube     YouTube     `json:"youtube"`
	RedisClient RedisClient `json:"redisClient"`
	Database    Database    `json:"database"`
	Dashboard   Dashboard   `json:"dashboard"`
}

type App struct {
	Port        int      `json:"port"`
	CORSOrigins []string `json:"corsOrigins"`
}

type YouTube struct {
	APIKey       string `json:"apiKey"`
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	RedirectURI  string `json:"redirectURI"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Database struct {
	Psql Db `json:"psql"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

// Dashboard tunes the aggregation pipeline. Zero values are replaced with the
// defaults below at load time.
type Dashboard struct {
	WindowDays       int `json:"windowDays"`
	MaxUploads       int `json:"maxUploads"`
	CacheTTLSeconds  int `json:"cacheTTLSeconds"`
	TopChannels      int `json:"topChannels"`
	FetchConcurrency int `json:"fetchConcurrency"`
}

var C Config

func init() {
	Reload()
}

// Reload re-reads the config file and re-applies environment overrides and
// defaults. main calls it after loading env files, since init runs first.
func Reload() {
	LoadConfig()
	applyEnvOverrides(&C)
	applyDefaults(&C)
}

// LoadConfig reads config.json (or config-<ENV>.json when ENV is set) from
// the working directory and its parents.
func LoadConfig() {
	name := configName()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func configName() string {
	name := "config"
	if env := os.Getenv("ENV"); env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func applyEnvOverrides(c *Config) {
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		c.YouTube.APIKey = v
	}
	if v := os.Getenv("YOUTUBE_CLIENT_ID"); v != "" {
		c.YouTube.ClientID = v
	}
	if v := os.Getenv("YOUTUBE_CLIENT_SECRET"); v != "" {
		c.YouTube.ClientSecret = v
	}
	if v := os.Getenv("YOUTUBE_ACCESS_TOKEN"); v != "" {
		c.YouTube.AccessToken = v
	}
	if v := os.Getenv("YOUTUBE_REFRESH_TOKEN"); v != "" {
		c.YouTube.RefreshToken = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.RedisClient.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		c.RedisClient.Port = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.RedisClient.Password = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Psql.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		c.Database.Psql.Port = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.Psql.Name = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.Psql.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Psql.Password = v
	}
}

func applyDefaults(c *Config) {
	if c.App.Port == 0 {
		c.App.Port = 8080
	}
	if len(c.App.CORSOrigins) == 0 {
		c.App.CORSOrigins = []string{"http://localhost:4200", "http://localhost:3000"}
	}
	if c.Dashboard.WindowDays == 0 {
		c.Dashboard.WindowDays = 7
	}
	if c.Dashboard.MaxUploads == 0 {
		c.Dashboard.MaxUploads = 20
	}
	if c.Dashboard.CacheTTLSeconds == 0 {
		c.Dashboard.CacheTTLSeconds = 600
	}
	if c.Dashboard.TopChannels == 0 {
		c.Dashboard.TopChannels = 5
	}
	if c.Dashboard.FetchConcurrency == 0 {
		c.Dashboard.FetchConcurrency = 4
	}
}
