// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pdfdesk/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EngineConfig holds defaults for the merge and split engines.
// Per prd001-merge R5.1 and prd002-split R5.1-R5.2.
type EngineConfig struct {
	// OutputDir is the default directory for split output files.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// NamingPattern is the default output filename template for split
	// operations. It must contain the [N] sequence placeholder.
	NamingPattern string `json:"naming_pattern" yaml:"naming_pattern"`
}

// FavoritesConfig holds settings for the pinned-folder list.
type FavoritesConfig struct {
	// Path is the JSON file the favorites list is persisted to.
	Path string `json:"path" yaml:"path"`
}

// HistoryConfig holds settings for the operation history store.
// Per prd004-history R1.1.
type HistoryConfig struct {
	// HistoryDir is the directory containing the history database.
	HistoryDir string `json:"history_dir" yaml:"history_dir"`

	// MaxResults is the default maximum number of listed runs (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// UpdateConfig holds settings for the release update check.
type UpdateConfig struct {
	HTTPConfig `yaml:",inline"`

	// Repo is the GitHub "owner/name" repository queried for releases.
	Repo string `json:"repo" yaml:"repo"`

	// MaxRetries is the number of retry attempts on rate-limited requests
	// (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// Token is an optional GitHub API token. Loaded from the secrets
	// directory, never from the config file.
	Token string `json:"-" yaml:"-"`
}

// Config groups all component configurations.
type Config struct {
	Engine    EngineConfig    `json:"engine" yaml:"engine"`
	Favorites FavoritesConfig `json:"favorites" yaml:"favorites"`
	History   HistoryConfig   `json:"history" yaml:"history"`
	Update    UpdateConfig    `json:"update" yaml:"update"`
}
