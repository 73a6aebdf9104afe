package configuration

import (
	"fmt"
	"os"
	"strconv"

	"tubeboost/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App       App       `json:"app"`
	YouTube   YouTube   `json:"youtube"`
	Gemini    Gemini    `json:"gemini"`
	RateLimit RateLimit `json:"rateLimit"`
	CORS      CORS      `json:"cors"`
}

type App struct {
	Port    int    `json:"port"`
	Env     string `json:"env"`     // development | production
	Version string `json:"version"` // reported by GET /health
}

type YouTube struct {
	APIKey string `json:"apiKey"`
}

type Gemini struct {
	APIKey string `json:"apiKey"`
	Model  string `json:"model"`
}

// RateLimit caps inbound /api traffic per client address.
type RateLimit struct {
	Requests      int `json:"requests"`      // default 100
	WindowMinutes int `json:"windowMinutes"` // default 15
}

// CORS lists allowed origins in production. Development allows any origin.
type CORS struct {
	AllowOrigins []string `json:"allowOrigins"`
}

var C Config

func init() {
	Reload()
}

// Reload re-reads the config file and re-applies env overrides. main calls
// it again after loading .env files, since package init runs before that.
func Reload() {
	LoadConfig()
	initApp(&C)
	initProviders(&C)
}

func LoadConfig() {
	name := getConfig()
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
	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 3000
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 3000
	}
	if v := os.Getenv("ENV"); v != "" {
		C.App.Env = v
	}
	if C.App.Env == "" {
		C.App.Env = "development"
	}
	if C.App.Version == "" {
		C.App.Version = "1.0.0"
	}
	if C.RateLimit.Requests == 0 {
		C.RateLimit.Requests = 100
	}
	if C.RateLimit.WindowMinutes == 0 {
		C.RateLimit.WindowMinutes = 15
	}
}

func initProviders(C *Config) {
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		C.YouTube.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		C.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		C.Gemini.Model = v
	}
	if C.Gemini.Model == "" {
		C.Gemini.Model = "gemini-2.0-flash"
	}
	if C.YouTube.APIKey == "" {
		logger.GetLogger().Warn("YouTube.APIKey not set; metadata endpoints will fail. Provide YOUTUBE_API_KEY via environment.")
	}
	if C.Gemini.APIKey == "" {
		logger.GetLogger().Warn("Gemini.APIKey not set; optimization endpoints will fail. Provide GEMINI_API_KEY via environment.")
	}
}

// IsProduction reports whether the service runs with production error
// verbosity and CORS policy.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production" || c.App.Env == "prod"
}
