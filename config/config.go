package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database

	// ActiveSectionIDs is a comma-separated list of section IDs that
	// participate in scoring, e.g. "ETSI,GSA,IAA". Empty means every
	// section in the catalog is active. Resolved once per request and
	// threaded into the scoring entry point, never re-read ambiently.
	ActiveSectionIDs string

	// QuestionsI18nFile is the JSON overlay with translated question text.
	QuestionsI18nFile string

	// AreaDetailsFile is the JSON file with per-area risk descriptions and
	// MITRE/NIST references served on report roadmaps.
	AreaDetailsFile string

	GeminiApiKey string
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

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("QUESTIONS_I18N_FILE", "data/questions_i18n.json")
	viper.SetDefault("AREA_DETAILS_FILE", "data/area_domain_details.json")

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.ActiveSectionIDs = viper.GetString("ACTIVE_SECTION_IDS")
	config.QuestionsI18nFile = viper.GetString("QUESTIONS_I18N_FILE")
	config.AreaDetailsFile = viper.GetString("AREA_DETAILS_FILE")
	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().Str("port", config.Server.Port).Str("active_sections", config.ActiveSectionIDs).Msg("Config loaded")
	return &config, nil
}
