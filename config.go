// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/courseplanner/coursetree"
	"github.com/cybrota/courseplanner/source"
)

const (
	configFileName = ".courseplanner.yaml"
	configEnvVar   = "COURSEPLANNER_CONFIG"
)

type DataConfig struct {
	Path         string `yaml:"path"`
	Format       string `yaml:"format"` // auto | csv | jsonc | html | postgres
	CSVHeader    bool   `yaml:"csv_header"`
	HTMLSelector string `yaml:"html_selector"`
	DatabaseURL  string `yaml:"database_url"`
}

type DisplayConfig struct {
	Order         string `yaml:"order"`
	Format        string `yaml:"format"` // text | json | yaml | cbor
	DefaultCourse string `yaml:"default_course"`
}

type LoaderConfig struct {
	ShowProgress bool `yaml:"show_progress"`
}

type Config struct {
	Data    DataConfig    `yaml:"data"`
	Display DisplayConfig `yaml:"display"`
	Loader  LoaderConfig  `yaml:"loader"`
}

func defaultConfig() Config {
	return Config{
		Data: DataConfig{
			Path:         "course.csv",
			Format:       source.FormatAuto,
			HTMLSelector: "table",
		},
		Display: DisplayConfig{
			Order:         coursetree.InOrder.String(),
			Format:        formatText,
			DefaultCourse: "CSCI400",
		},
		Loader: LoaderConfig{
			ShowProgress: true,
		},
	}
}

// getConfigPath resolves the config file: an explicit path wins, then
// $COURSEPLANNER_CONFIG, then ~/.courseplanner.yaml
func getConfigPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if env := os.Getenv(configEnvVar); env != "" {
		return env, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the config file at path (resolved by getConfigPath).
// A missing file yields the defaults. Keys absent from the file keep
// their default values. On a malformed file the defaults are returned
// together with the error.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()

	configPath, err := getConfigPath(path)
	if err != nil {
		return &config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &config, nil
		}
		return &config, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	loaded := defaultConfig()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return &config, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}
	if err := loaded.validate(); err != nil {
		return &config, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return &loaded, nil
}

func (c *Config) validate() error {
	if _, err := coursetree.ParseOrder(c.Display.Order); err != nil {
		return err
	}
	if !validFormat(c.Display.Format) {
		return fmt.Errorf("unknown display format %q", c.Display.Format)
	}
	return nil
}

// dataLocation is what source.Open receives: the database URL for the
// postgres format (or when no path is set), the data path otherwise
func (c *Config) dataLocation() string {
	if c.Data.DatabaseURL != "" && (c.Data.Format == source.FormatPostgres || c.Data.Path == "") {
		return c.Data.DatabaseURL
	}
	return c.Data.Path
}

func createDefaultConfigFile(configPath string) error {
	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings(w io.Writer, override string) {
	configPath, err := getConfigPath(override)
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Fprintf(w, "❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(w, "⚠️  %v. Showing default settings.\n\n", err)
	}

	fmt.Fprintf(w, "🔧 Course Planner Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")

	fmt.Fprintf(w, "📂 %sData:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %spath%s: %s\n", Green, Reset, config.Data.Path)
	fmt.Fprintf(w, "  • %sformat%s: %s\n", Green, Reset, config.Data.Format)
	fmt.Fprintf(w, "  • %scsv_header%s: %t\n", Green, Reset, config.Data.CSVHeader)
	fmt.Fprintf(w, "  • %shtml_selector%s: %s\n", Green, Reset, config.Data.HTMLSelector)
	if config.Data.DatabaseURL != "" {
		fmt.Fprintf(w, "  • %sdatabase_url%s: (set)\n", Green, Reset)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "📋 %sDisplay:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sorder%s: %s\n", Green, Reset, config.Display.Order)
	fmt.Fprintf(w, "  • %sformat%s: %s\n", Green, Reset, config.Display.Format)
	fmt.Fprintf(w, "  • %sdefault_course%s: %s\n\n", Green, Reset, config.Display.DefaultCourse)

	fmt.Fprintf(w, "⏳ %sLoader:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sshow_progress%s: %t\n\n", Green, Reset, config.Loader.ShowProgress)

	fmt.Fprintf(w, "💡 To read a JSONC catalog instead of CSV, edit %s:\n", configPath)
	fmt.Fprintf(w, "   data:\n     path: catalog.jsonc\n     format: jsonc\n")
}
