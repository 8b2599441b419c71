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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".ranktree.yaml"

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

type CheckConfig struct {
	BloomSize   uint `yaml:"bloom_size"`
	BloomHashes uint `yaml:"bloom_hashes"`
	Progress    bool `yaml:"progress"`
}

type GenerateConfig struct {
	Num   int `yaml:"num"`
	Elems int `yaml:"elems"`
	Upper int `yaml:"upper"`
}

type Config struct {
	// Tree is the default variant: avl or rb.
	Tree     string         `yaml:"tree"`
	Cache    CacheConfig    `yaml:"cache"`
	Check    CheckConfig    `yaml:"check"`
	Generate GenerateConfig `yaml:"generate"`
}

var defaultConfig = Config{
	Tree: "avl",
	Cache: CacheConfig{
		Enabled: false,
		TTL:     5 * time.Minute,
	},
	Check: CheckConfig{
		BloomSize:   100000,
		BloomHashes: 5,
		Progress:    true,
	},
	Generate: GenerateConfig{
		Num:   10,
		Elems: 100,
		Upper: 1000,
	},
}

// LoadConfig reads the YAML config at path. A missing or unreadable file
// yields the defaults; fields absent from the file keep their default value.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig
	if path == "" {
		return &config, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &config, nil
	}
	if err != nil {
		return &config, fmt.Errorf("failed to read config file: %v", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig
		return &fallback, fmt.Errorf("failed to parse config file %s: %v", path, err)
	}
	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}
	return nil
}

func displaySettings(w io.Writer, configPath string) {
	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Fprintf(w, "❌ %sFailed to create default config file:%s %v\n", Red, Reset, err)
			return
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(w, "❌ %sFailed to load configuration:%s %v\n", Red, Reset, err)
		return
	}

	fmt.Fprintf(w, "🔧 Ranktree Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")

	fmt.Fprintf(w, "  • %stree%s: %s\n", Green, Reset, config.Tree)
	fmt.Fprintf(w, "    Variant used by run when --tree is not given\n\n")

	fmt.Fprintf(w, "🗄  %sQuery cache:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %senabled%s: %t\n", Green, Reset, config.Cache.Enabled)
	fmt.Fprintf(w, "  • %sttl%s: %s\n\n", Green, Reset, config.Cache.TTL)

	fmt.Fprintf(w, "✔  %sCheck:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sbloom_size%s: %d\n", Green, Reset, config.Check.BloomSize)
	fmt.Fprintf(w, "  • %sbloom_hashes%s: %d\n", Green, Reset, config.Check.BloomHashes)
	fmt.Fprintf(w, "  • %sprogress%s: %t\n\n", Green, Reset, config.Check.Progress)

	fmt.Fprintf(w, "🎲 %sGenerate:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %snum%s: %d\n", Green, Reset, config.Generate.Num)
	fmt.Fprintf(w, "  • %selems%s: %d\n", Green, Reset, config.Generate.Elems)
	fmt.Fprintf(w, "  • %supper%s: %d\n\n", Green, Reset, config.Generate.Upper)

	fmt.Fprintf(w, "💡 Edit %s to change these values.\n", configPath)
}
