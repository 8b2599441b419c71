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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		Name     string
		Content  string // empty means no file
		WantErr  bool
		Validate func(t *testing.T, c *Config)
	}{
		{
			Name: "Missing file uses defaults",
			Validate: func(t *testing.T, c *Config) {
				if *c != defaultConfig {
					t.Errorf("config = %+v; want defaults", *c)
				}
			},
		},
		{
			Name:    "Partial file keeps other defaults",
			Content: "tree: rb\ncache:\n  enabled: true\n  ttl: 30s\n",
			Validate: func(t *testing.T, c *Config) {
				if c.Tree != "rb" || !c.Cache.Enabled || c.Cache.TTL != 30*time.Second {
					t.Errorf("config = %+v", *c)
				}
				if c.Check != defaultConfig.Check || c.Generate != defaultConfig.Generate {
					t.Errorf("unset sections lost their defaults: %+v", *c)
				}
			},
		},
		{
			Name:    "Invalid YAML falls back to defaults",
			Content: "tree: [unterminated\n",
			WantErr: true,
			Validate: func(t *testing.T, c *Config) {
				if *c != defaultConfig {
					t.Errorf("config = %+v; want defaults", *c)
				}
			},
		},
	}

	for i, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			path := filepath.Join(dir, "missing.yaml")
			if tc.Content != "" {
				path = filepath.Join(dir, "config"+string(rune('a'+i))+".yaml")
				if err := os.WriteFile(path, []byte(tc.Content), 0644); err != nil {
					t.Fatal(err)
				}
			}
			c, err := LoadConfig(path)
			if (err != nil) != tc.WantErr {
				t.Fatalf("LoadConfig error = %v; want error %v", err, tc.WantErr)
			}
			tc.Validate(t, c)
		})
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	c, err := LoadConfig("")
	if err != nil || *c != defaultConfig {
		t.Errorf("LoadConfig(\"\") = %+v, %v; want defaults", *c, err)
	}
}

func TestLoadConfigDoesNotAliasDefaults(t *testing.T) {
	c, _ := LoadConfig("")
	c.Tree = "rb"
	if defaultConfig.Tree != "avl" {
		t.Errorf("mutating a loaded config changed the defaults")
	}
}

func TestDisplaySettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ranktree.yaml")

	var out bytes.Buffer
	displaySettings(&out, path)
	if !strings.Contains(out.String(), "(newly created)") || !strings.Contains(out.String(), "tree"+Reset+": avl") {
		t.Errorf("first run output:\n%s", out.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}

	out.Reset()
	displaySettings(&out, path)
	if strings.Contains(out.String(), "newly created") {
		t.Errorf("second run recreated the file:\n%s", out.String())
	}
}

func TestDisplaySettingsReportsErrors(t *testing.T) {
	testCases := []struct {
		Name    string
		Path    func(dir string) string
		Message string
	}{
		{
			Name:    "Unwritable location",
			Path:    func(dir string) string { return filepath.Join(dir, "missing", "config.yaml") },
			Message: "Failed to create default config file:",
		},
		{
			Name: "Broken YAML",
			Path: func(dir string) string {
				p := filepath.Join(dir, "broken.yaml")
				os.WriteFile(p, []byte("tree: [oops\n"), 0644)
				return p
			},
			Message: "Failed to load configuration:",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var out bytes.Buffer
			displaySettings(&out, tc.Path(t.TempDir()))
			if !strings.Contains(out.String(), Red+tc.Message+Reset) {
				t.Errorf("output does not carry the red error line %q:\n%s", tc.Message, out.String())
			}
		})
	}
}

func TestCreateDefaultConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ranktree.yaml")
	if err := createDefaultConfigFile(path); err != nil {
		t.Fatalf("createDefaultConfigFile: %v", err)
	}
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *c != defaultConfig {
		t.Errorf("written config = %+v; want defaults", *c)
	}
}
