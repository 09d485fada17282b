package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Gemini   GeminiConfig   `yaml:"gemini"`
}

type ServerConfig struct {
	Port int    `yaml:"port" env:"PORT"`
	Mode string `yaml:"mode" env:"GIN_MODE"` // debug/test/release
}

type DatabaseConfig struct {
	Path string `yaml:"path" env:"DB_PATH"`
}

type GeminiConfig struct {
	APIKey   string `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model    string `yaml:"model" env:"GEMINI_MODEL"`
	Endpoint string `yaml:"endpoint" env:"GEMINI_ENDPOINT"`
	// PromptTemplate wraps the user's question; %s is replaced with the
	// question text. Business content, kept out of code paths.
	PromptTemplate string `yaml:"prompt_template"`
}

// DefaultPromptTemplate instructs the model to answer in the language the
// question was asked in (English, Urdu script, or roman Urdu) and to keep a
// consistent structure across answers.
const DefaultPromptTemplate = `You are a warm and knowledgeable maternal health assistant helping mothers and mothers-to-be.

First detect the language of the question below: it may be English, Urdu written in Urdu script, or Urdu written in Roman letters. Always reply in the same language and script the question was asked in.

Format every answer the same way: start with one warm, reassuring sentence, then give advice under clear section headings, each section as short bullet points. End by reminding the reader to consult a doctor for anything serious or persistent.

Question: %s`

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Port: 8080, Mode: "release"},
		Database: DatabaseConfig{Path: "./mamta.db"},
		Gemini: GeminiConfig{
			Model:          "gemini-1.5-flash",
			Endpoint:       "https://generativelanguage.googleapis.com/v1beta",
			PromptTemplate: DefaultPromptTemplate,
		},
	}
}

// Load layers configuration: defaults, then the YAML file if it exists, then
// environment variables. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
