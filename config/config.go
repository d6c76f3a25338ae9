package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	ServerPort         string        `mapstructure:"SERVER_PORT"`
	GinMode            string        `mapstructure:"GIN_MODE"`
	FrontendOrigin     string        `mapstructure:"FRONTEND_ORIGIN"`
	AnswerKeyPath      string        `mapstructure:"ANSWER_KEY_PATH"`
	DatabaseURL        string        `mapstructure:"DATABASE_URL"`
	AnswerKeyTable     string        `mapstructure:"ANSWER_KEY_TABLE"`
	TipsPath           string        `mapstructure:"TIPS_PATH"`
	ChartRenderTimeout time.Duration `mapstructure:"CHART_RENDER_TIMEOUT"`
}

// LoadConfig loads configuration from environment variables and config.yaml
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config") // config.yaml
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	// Set defaults
	viper.SetDefault("SERVER_PORT", ":8080")
	viper.SetDefault("GIN_MODE", "debug") // gin.DebugMode, gin.ReleaseMode, gin.TestMode
	viper.SetDefault("FRONTEND_ORIGIN", "http://localhost:3000")
	viper.SetDefault("ANSWER_KEY_PATH", "data/answer_key.csv")
	// DATABASE_URL is empty by default: the answer key is read from CSV unless
	// a Postgres URL is configured.
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("ANSWER_KEY_TABLE", "answer_key")
	viper.SetDefault("TIPS_PATH", "") // empty = built-in tip tables
	viper.SetDefault("CHART_RENDER_TIMEOUT", "5s")
	// Read from config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("config.yaml not found, using environment variables and defaults")
		} else {
			return nil, fmt.Errorf("fatal error config file: %w", err)
		}
	}
	// Override with environment variables (e.g., TESTPREP_SERVER_PORT)
	viper.SetEnvPrefix("TESTPREP")
	viper.AutomaticEnv()
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &cfg, nil
}
