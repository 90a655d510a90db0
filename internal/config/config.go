package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const DefaultQuizFile = "agile_quiz.json"

type Config struct {
	QuizFile string
	Debug    bool
}

// Load reads the configuration from the environment, after loading a .env
// file if one is present. A missing .env is only reported in debug mode.
func Load() *Config {
	envErr := godotenv.Load()

	cfg := FromEnv()
	if envErr != nil && cfg.Debug {
		log.Println("No .env file found, using environment variables")
	}
	return cfg
}

// FromEnv builds the configuration from the current environment only.
func FromEnv() *Config {
	debug, err := strconv.ParseBool(getEnv("QUIZ_DEBUG", "false"))
	if err != nil {
		debug = false
	}

	return &Config{
		QuizFile: getEnv("QUIZ_FILE", DefaultQuizFile),
		Debug:    debug,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
