// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package update checks GitHub releases for a newer pdfdesk version.
// Implements: docs/ARCHITECTURE § Update Check.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/pdiddy/pdfdesk/internal/httputil"
	"github.com/pdiddy/pdfdesk/pkg/types"
)

// apiBase is the GitHub API root. Tests point it at a local server.
var apiBase = "https://api.github.com"

// Release is the subset of the GitHub release record the tool cares about.
type Release struct {
	Tag  string `json:"tag_name"`
	Name string `json:"name"`
	URL  string `json:"html_url"`
}

// Latest fetches the most recent release of cfg.Repo. Rate-limited requests
// are retried with exponential backoff; other non-200 responses fail.
func Latest(ctx context.Context, client *http.Client, cfg types.UpdateConfig) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", apiBase, cfg.Repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	if cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.Token)
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("release request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned HTTP %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("parsing release response: %w", err)
	}
	if release.Tag == "" {
		return nil, fmt.Errorf("release record has no tag")
	}
	return &release, nil
}

// IsNewer reports whether the latest tag names a version newer than
// current. Tags compare as dotted integers after stripping a leading "v";
// tags that do not parse compare as plain strings.
func IsNewer(current, latest string) bool {
	cur, curOK := parseVersion(current)
	lat, latOK := parseVersion(latest)
	if !curOK || !latOK {
		return latest != current
	}
	for i := 0; i < len(cur) || i < len(lat); i++ {
		c, l := 0, 0
		if i < len(cur) {
			c = cur[i]
		}
		if i < len(lat) {
			l = lat[i]
		}
		if l != c {
			return l > c
		}
	}
	return false
}

func parseVersion(tag string) ([]int, bool) {
	tag = strings.TrimPrefix(strings.TrimSpace(tag), "v")
	if tag == "" {
		return nil, false
	}
	parts := strings.Split(tag, ".")
	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, false
		}
		nums[i] = n
	}
	return nums, true
}
