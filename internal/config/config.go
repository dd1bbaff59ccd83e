package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults mirror the conventional file names used when no config is present.
const (
	DefaultInput     = "university_diagram.puml"
	DefaultOutputDir = "generated_java"
	DefaultDBPath    = "umlgen.db"
)

type Config struct {
	Project struct {
		Input     string `yaml:"input"`
		OutputDir string `yaml:"output_dir"`
		DB        string `yaml:"db"`
	} `yaml:"project"`
	Generator struct {
		Check bool `yaml:"check"` // verify generated artifacts with the Java grammar
	} `yaml:"generator"`
}

// LoadConfig reads the YAML config at path, falling back to defaults when the
// file is absent. Environment variables (optionally from a .env file) override
// file values.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Project.Input = DefaultInput
	cfg.Project.OutputDir = DefaultOutputDir
	cfg.Project.DB = DefaultDBPath

	// 2. Load YAML config; a missing file is not an error.
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if cfg.Project.Input == "" {
		cfg.Project.Input = DefaultInput
	}
	if cfg.Project.OutputDir == "" {
		cfg.Project.OutputDir = DefaultOutputDir
	}
	if cfg.Project.DB == "" {
		cfg.Project.DB = DefaultDBPath
	}

	// 3. Override with environment variables if present.
	if input := os.Getenv("UMLGEN_INPUT"); input != "" {
		cfg.Project.Input = input
	}
	if outDir := os.Getenv("UMLGEN_OUTPUT_DIR"); outDir != "" {
		cfg.Project.OutputDir = outDir
	}
	if db := os.Getenv("UMLGEN_DB"); db != "" {
		cfg.Project.DB = db
	}

	return cfg, nil
}
