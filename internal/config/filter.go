package config

import (
	"fmt"
	"strings"

	"github.com/genricoloni/mprisence/internal/domain"
	"github.com/spf13/viper"
)

// filterKeys must all be present in the filter file; other keys are ignored
var filterKeys = []string{
	"keyword_whitelist",
	"use_whitelist",
	"play_no_url",
	"artist_keyword_blacklist",
	"use_artist_blacklist",
	"embolden_titles",
}

// LoadFilter reads the JSON filter configuration at path
func LoadFilter(path string) (domain.FilterConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return domain.FilterConfig{}, fmt.Errorf("read filter config %s: %w", path, err)
	}

	var missing []string
	for _, key := range filterKeys {
		if !v.IsSet(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return domain.FilterConfig{}, fmt.Errorf("filter config %s: missing %s", path, strings.Join(missing, ", "))
	}

	var cfg domain.FilterConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return domain.FilterConfig{}, fmt.Errorf("decode filter config %s: %w", path, err)
	}
	return cfg, nil
}
