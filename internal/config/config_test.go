package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/genricoloni/mprisence/internal/domain"
	"go.uber.org/zap"
)

var envKeys = []string{
	"APP_ID",
	"MPRISENCE_CONFIG",
	"MPRISENCE_POLL_INTERVAL",
	"MPRISENCE_METRICS_ADDR",
	"MPRISENCE_LARGE_IMAGE",
	"MPRISENCE_LARGE_TEXT",
	"LOG_LEVEL",
}

// clearEnv unsets every variable Env reads, restoring them after the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadEnv(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		want    Env
		wantErr bool
	}{
		{
			name: "defaults",
			vars: map[string]string{"APP_ID": "1093148457437294613"},
			want: Env{
				AppID:        1093148457437294613,
				ConfigPath:   "config.json",
				PollInterval: 2 * time.Second,
				LargeImage:   "arch_icon",
				LargeText:    "#ARCHONTOP",
				LogLevel:     "info",
			},
		},
		{
			name: "overrides",
			vars: map[string]string{
				"APP_ID":                  "7",
				"MPRISENCE_CONFIG":        "/etc/mprisence.json",
				"MPRISENCE_POLL_INTERVAL": "500ms",
				"MPRISENCE_METRICS_ADDR":  ":9090",
				"MPRISENCE_LARGE_IMAGE":   "logo",
				"MPRISENCE_LARGE_TEXT":    "hello",
				"LOG_LEVEL":               "debug",
			},
			want: Env{
				AppID:        7,
				ConfigPath:   "/etc/mprisence.json",
				PollInterval: 500 * time.Millisecond,
				MetricsAddr:  ":9090",
				LargeImage:   "logo",
				LargeText:    "hello",
				LogLevel:     "debug",
			},
		},
		{
			name:    "missing app id",
			vars:    map[string]string{},
			wantErr: true,
		},
		{
			name:    "non numeric app id",
			vars:    map[string]string{"APP_ID": "abc"},
			wantErr: true,
		},
		{
			name:    "zero poll interval",
			vars:    map[string]string{"APP_ID": "1", "MPRISENCE_POLL_INTERVAL": "0s"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.vars {
				t.Setenv(k, v)
			}

			got, err := LoadEnv()
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadEnv() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("LoadEnv() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, ".env", "APP_ID=42\nLOG_LEVEL=warn\n")
	t.Setenv("LOG_LEVEL", "error")

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile: %v", err)
	}
	if got := os.Getenv("APP_ID"); got != "42" {
		t.Errorf("APP_ID = %q, want 42", got)
	}
	if got := os.Getenv("LOG_LEVEL"); got != "error" {
		t.Errorf("LOG_LEVEL = %q, already set variables must win", got)
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("Missing .env should be ignored, got %v", err)
	}
	if err := LoadEnvFile(""); err != nil {
		t.Errorf("Empty path should be ignored, got %v", err)
	}
}

const fullFilter = `{
	"keyword_whitelist": ["youtube", "soundcloud"],
	"use_whitelist": true,
	"play_no_url": false,
	"artist_keyword_blacklist": ["Topic"],
	"use_artist_blacklist": true,
	"embolden_titles": true
}`

func TestLoadFilter(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    domain.FilterConfig
		wantErr bool
	}{
		{
			name:    "full",
			content: fullFilter,
			want: domain.FilterConfig{
				KeywordWhitelist:       []string{"youtube", "soundcloud"},
				UseWhitelist:           true,
				ArtistKeywordBlacklist: []string{"Topic"},
				UseArtistBlacklist:     true,
				EmboldenTitles:         true,
			},
		},
		{
			name: "unknown keys are ignored",
			content: `{
				"keyword_whitelist": ["youtube"],
				"use_whitelist": false,
				"play_no_url": true,
				"artist_keyword_blacklist": ["Topic"],
				"use_artist_blacklist": false,
				"embolden_titles": false,
				"theme": "dark"
			}`,
			want: domain.FilterConfig{
				KeywordWhitelist:       []string{"youtube"},
				PlayNoURL:              true,
				ArtistKeywordBlacklist: []string{"Topic"},
			},
		},
		{
			name:    "missing key",
			content: `{"play_no_url": true}`,
			wantErr: true,
		},
		{
			name:    "invalid json",
			content: `{"use_whitelist": `,
			wantErr: true,
		},
		{
			name:    "wrong type",
			content: strings.Replace(fullFilter, `"use_whitelist": true`, `"use_whitelist": "sometimes"`, 1),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "config.json", tt.content)

			got, err := LoadFilter(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadFilter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LoadFilter() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadFilter_MissingFile(t *testing.T) {
	if _, err := LoadFilter(filepath.Join(t.TempDir(), "config.json")); err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestNewAppConfig(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"keyword_whitelist": ["youtube"],
		"use_whitelist": false,
		"play_no_url": true,
		"artist_keyword_blacklist": ["Topic"],
		"use_artist_blacklist": false,
		"embolden_titles": true
	}`)
	env := Env{
		AppID:        99,
		ConfigPath:   path,
		PollInterval: time.Second,
		MetricsAddr:  "127.0.0.1:9000",
		LargeImage:   "img",
		LargeText:    "txt",
	}

	cfg, err := NewAppConfig(zap.NewNop(), env)
	if err != nil {
		t.Fatalf("NewAppConfig: %v", err)
	}

	var _ domain.Config = cfg
	if cfg.GetAppID() != 99 {
		t.Errorf("GetAppID() = %d", cfg.GetAppID())
	}
	if !cfg.GetFilter().EmboldenTitles || !cfg.GetFilter().PlayNoURL {
		t.Errorf("GetFilter() = %+v", cfg.GetFilter())
	}
	if cfg.GetPollInterval() != time.Second {
		t.Errorf("GetPollInterval() = %s", cfg.GetPollInterval())
	}
	if cfg.GetMetricsAddr() != "127.0.0.1:9000" {
		t.Errorf("GetMetricsAddr() = %q", cfg.GetMetricsAddr())
	}
	if cfg.GetLargeImage() != "img" || cfg.GetLargeText() != "txt" {
		t.Errorf("Assets = %q %q", cfg.GetLargeImage(), cfg.GetLargeText())
	}
}

func TestNewAppConfig_MissingFilter(t *testing.T) {
	env := Env{AppID: 1, ConfigPath: filepath.Join(t.TempDir(), "missing.json"), PollInterval: time.Second}
	if _, err := NewAppConfig(zap.NewNop(), env); err == nil {
		t.Fatal("Expected error when filter file is missing")
	}
}
