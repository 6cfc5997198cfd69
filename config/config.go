package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Exam     Exam
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Exam holds the attempt timing knobs. DurationMin bounds the whole
// attempt; ProvisionalWindowMin is the per-skill window written at creation
// time, before the skill's own configured window applies on activation.
type Exam struct {
	DurationMin          int
	ProvisionalWindowMin int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("EXAM_DURATION_MIN", 200)
	viper.SetDefault("PROVISIONAL_SKILL_WINDOW_MIN", 50)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Exam.DurationMin = viper.GetInt("EXAM_DURATION_MIN")
	config.Exam.ProvisionalWindowMin = viper.GetInt("PROVISIONAL_SKILL_WINDOW_MIN")

	log.Info().Str("port", config.Server.Port).Msg("Config loaded")
	return &config, nil
}
