package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DisposaBoy/JsonConfigReader"
	yaml "gopkg.in/yaml.v3"
)

// ConfigStructure is structure of main configuration
type ConfigStructure struct { // nolint: maligned
	// General
	RootDir              string `json:"rootDir"               yaml:"root_dir"`
	LogLevel             string `json:"logLevel"              yaml:"log_level"`
	LogFormat            string `json:"logFormat"             yaml:"log_format"`
	DatabaseOpenAttempts int    `json:"databaseOpenAttempts"  yaml:"database_open_attempts"`

	// Database
	DatabaseBackend DBConfig `json:"databaseBackend"       yaml:"database_backend"`

	// Decoding
	OutputDirectory   string `json:"outputDirectory"       yaml:"output_directory"`
	DecodeConcurrency int    `json:"decodeConcurrency"     yaml:"decode_concurrency"`

	// Archive volumes
	IndexExtension string `json:"indexExtension"        yaml:"index_extension"`
	DataExtension  string `json:"dataExtension"         yaml:"data_extension"`

	// Item tables
	ItemKey int `json:"itemKey"               yaml:"item_key"`
}

// DBConfig describes database backend configuration
type DBConfig struct {
	Type   string `json:"type"   yaml:"type"`
	DbPath string `json:"dbPath" yaml:"db_path"`
}

// Config is configuration for kgtool, shared by all modules
var Config = ConfigStructure{
	RootDir:              filepath.Join(os.Getenv("HOME"), ".kgtool"),
	LogLevel:             "info",
	LogFormat:            "default",
	DatabaseOpenAttempts: -1,
	OutputDirectory:      "",
	DecodeConcurrency:    4,
	IndexExtension:       ".idx",
	DataExtension:        ".dat",
	ItemKey:              0x5a,
}

// LoadConfig loads configuration from json file
func LoadConfig(filename string, config *ConfigStructure) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	decJSON := json.NewDecoder(JsonConfigReader.New(f))
	if err = decJSON.Decode(&config); err != nil {
		_, _ = f.Seek(0, 0)
		decYAML := yaml.NewDecoder(f)
		if err2 := decYAML.Decode(&config); err2 != nil {
			err = fmt.Errorf("invalid yaml (%s) or json (%s)", err2, err)
		} else {
			err = nil
		}
	}
	return err
}

// SaveConfig write configuration to json file
func SaveConfig(filename string, config *ConfigStructure) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	encoded, err := json.MarshalIndent(&config, "", "  ")
	if err != nil {
		return err
	}

	_, err = f.Write(encoded)
	return err
}

// SaveConfigYAML write configuration to yaml file
func SaveConfigYAML(filename string, config *ConfigStructure) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	yamlData, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("error marshaling to YAML: %s", err)
	}

	_, err = f.Write(yamlData)
	return err
}

// GetRootDir returns the RootDir with expanded ~ as home directory
func (conf *ConfigStructure) GetRootDir() string {
	return strings.Replace(conf.RootDir, "~", os.Getenv("HOME"), 1)
}
