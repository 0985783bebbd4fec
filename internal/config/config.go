package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config is the application configuration loaded from a YAML file.
type Config struct {
	Logger Logger `yaml:"logger"`
	Format Format `yaml:"format"`
}

// Logger carries structured-logging settings.
type Logger struct {
	Level           string `yaml:"level"`
	JSONFormat      bool   `yaml:"json_format"`
	IncludeLocation bool   `yaml:"include_location"`
}

// Format carries defaults for the format command; flags override them.
type Format struct {
	ToolVersion      string `yaml:"tool_version"`
	BaseFolder       string `yaml:"base_folder"`
	IgnoreSuppressed bool   `yaml:"ignore_suppressed"`
	Pretty           bool   `yaml:"pretty"`
}

// ValidateConfigPath checks that the given path is a readable file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes the YAML file at configPath into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}
	return nil
}

// LoadConfig loads the configuration file. A missing file is not an error:
// the command must work with zero configuration, so defaults are returned.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}
	if err := LoadYAML(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}
