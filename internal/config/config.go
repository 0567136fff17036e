/*
Copyright 2014 Workiva, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads listverify settings from YAML with environment
// overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the report writer.
const (
	FormatXML  = "XML"
	FormatJSON = "JSON"
)

// Operation profiles.
const (
	ProfileDefault  = "DEFAULT"
	ProfileStronger = "STRONGER"
)

// Target patterns.
const (
	TargetArrayList = "list.ArrayList"
	TargetSafeList  = "list.SafeList"
	TargetAll       = "list.*"
)

// Config drives a verification run.
type Config struct {
	Target             string   `yaml:"target"`
	Threads            int      `yaml:"threads"`
	OutputFormats      []string `yaml:"output_formats"`
	TimestampedReports bool     `yaml:"timestamped_reports"`
	Profile            string   `yaml:"profile"`
	ReportDir          string   `yaml:"report_dir"`
	Scripts            int      `yaml:"scripts"`
	Steps              int      `yaml:"steps"`
	Seed               int64    `yaml:"seed"`
	LogLevel           string   `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Target:        TargetAll,
		Threads:       4,
		OutputFormats: []string{FormatXML},
		Profile:       ProfileStronger,
		ReportDir:     "build/reports/listverify",
		Scripts:       64,
		Steps:         256,
		Seed:          1,
		LogLevel:      "info",
	}
}

// Load reads path on top of the defaults, applies LISTVERIFY_* environment
// overrides and validates the result.  An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("LISTVERIFY_THREADS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LISTVERIFY_THREADS: %w", err)
		}
		cfg.Threads = n
	}
	if v, ok := lookup("LISTVERIFY_SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("LISTVERIFY_SEED: %w", err)
		}
		cfg.Seed = n
	}
	if v, ok := lookup("LISTVERIFY_TARGET"); ok {
		cfg.Target = v
	}
	if v, ok := lookup("LISTVERIFY_PROFILE"); ok {
		cfg.Profile = v
	}
	if v, ok := lookup("LISTVERIFY_REPORT_DIR"); ok {
		cfg.ReportDir = v
	}
	return nil
}

func (c *Config) normalize() {
	c.Profile = strings.ToUpper(strings.TrimSpace(c.Profile))
	for i, f := range c.OutputFormats {
		c.OutputFormats[i] = strings.ToUpper(strings.TrimSpace(f))
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Threads < 1:
		return fmt.Errorf("threads: must be >= 1, got %d", c.Threads)
	case c.Scripts < 1:
		return fmt.Errorf("scripts: must be >= 1, got %d", c.Scripts)
	case c.Steps < 1:
		return fmt.Errorf("steps: must be >= 1, got %d", c.Steps)
	case c.ReportDir == "":
		return errors.New("report_dir: must not be empty")
	case len(c.OutputFormats) == 0:
		return errors.New("output_formats: at least one format required")
	}
	switch c.Target {
	case TargetAll, TargetArrayList, TargetSafeList:
	default:
		return fmt.Errorf("target: unknown target %q", c.Target)
	}
	if c.Profile != ProfileDefault && c.Profile != ProfileStronger {
		return fmt.Errorf("profile: unknown profile %q", c.Profile)
	}
	for _, f := range c.OutputFormats {
		if f != FormatXML && f != FormatJSON {
			return fmt.Errorf("output_formats: unknown format %q", f)
		}
	}
	return nil
}
