// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"rsc.io/autolink"
)

// A config holds the linker settings before flags are applied.
// Each field can be set in the YAML file named by AUTOLINK_CONFIG,
// and then overridden by its environment variable.
type config struct {
	Kinds      string `yaml:"kinds"`       // AUTOLINK_KINDS=url,email
	URLTypes   string `yaml:"url_types"`   // AUTOLINK_URL_TYPES=scheme,www
	Hashtag    string `yaml:"hashtag"`     // AUTOLINK_HASHTAG=instagram
	Mention    string `yaml:"mention"`     // AUTOLINK_MENTION=twitter
	Class      string `yaml:"class"`       // AUTOLINK_CLASS=link
	NewWindow  bool   `yaml:"new_window"`  // AUTOLINK_NEW_WINDOW=true
	KeepPrefix bool   `yaml:"keep_prefix"` // AUTOLINK_KEEP_PREFIX=true
	KeepSlash  bool   `yaml:"keep_slash"`  // AUTOLINK_KEEP_TRAILING_SLASH=true
	Truncate   int    `yaml:"truncate"`    // AUTOLINK_TRUNCATE=32
	Middle     bool   `yaml:"middle"`      // AUTOLINK_TRUNCATE_MIDDLE=true
}

// loadConfig reads .env (if present), the YAML config file (if named),
// and then the environment.
func loadConfig() (*config, error) {
	_ = godotenv.Load()

	cfg := &config{Kinds: "all", Hashtag: "twitter", Mention: "twitter"}
	if file := strings.TrimSpace(os.Getenv("AUTOLINK_CONFIG")); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
	}

	envString(&cfg.Kinds, "AUTOLINK_KINDS")
	envString(&cfg.URLTypes, "AUTOLINK_URL_TYPES")
	envString(&cfg.Hashtag, "AUTOLINK_HASHTAG")
	envString(&cfg.Mention, "AUTOLINK_MENTION")
	envString(&cfg.Class, "AUTOLINK_CLASS")
	envBool(&cfg.NewWindow, "AUTOLINK_NEW_WINDOW")
	envBool(&cfg.KeepPrefix, "AUTOLINK_KEEP_PREFIX")
	envBool(&cfg.KeepSlash, "AUTOLINK_KEEP_TRAILING_SLASH")
	envBool(&cfg.Middle, "AUTOLINK_TRUNCATE_MIDDLE")
	if raw := strings.TrimSpace(os.Getenv("AUTOLINK_TRUNCATE")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("AUTOLINK_TRUNCATE: %w", err)
		}
		cfg.Truncate = n
	}
	return cfg, nil
}

func envString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func envBool(dst *bool, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v == "1" || strings.EqualFold(v, "true")
	}
}

// linker returns the Linker cfg describes.
func (cfg *config) linker() (*autolink.Linker, error) {
	kinds, err := autolink.ParseKinds(cfg.Kinds)
	if err != nil {
		return nil, err
	}
	types, err := autolink.ParseURLTypes(cfg.URLTypes)
	if err != nil {
		return nil, err
	}
	hashtag, err := autolink.ParseService(cfg.Hashtag)
	if err != nil {
		return nil, err
	}
	mention, err := autolink.ParseService(cfg.Mention)
	if err != nil {
		return nil, err
	}
	l := &autolink.Linker{
		Finder: autolink.Finder{
			Kinds:    kinds,
			URLTypes: types,
			Hashtag:  hashtag,
			Mention:  mention,
		},
		KeepPrefix:        cfg.KeepPrefix,
		KeepTrailingSlash: cfg.KeepSlash,
		NewWindow:         cfg.NewWindow,
		Class:             cfg.Class,
		Truncate:          cfg.Truncate,
		TruncateMiddle:    cfg.Middle,
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}
