// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads the ss.ini run configuration: named source/target
// directory pairs plus global settings. Configuration problems are the only
// fatal errors in this repository; everything downstream degrades to
// warnings or per-file errors.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	encini "github.com/go-viper/encoding/ini"
	"github.com/spf13/viper"

	"github.com/Sehktel/Split-Simplify/pkg/types"
)

// DefaultFile is the configuration file looked up in the working directory
// when no --config flag is given.
const DefaultFile = "ss.ini"

var (
	// ErrMissingConfigFile reports that the configuration file does not exist.
	ErrMissingConfigFile = errors.New("config file not found")

	// ErrMissingSection reports that the [directories] section is absent
	// or holds no keys.
	ErrMissingSection = errors.New("missing [directories] section")
)

const (
	defaultEncoding  = "utf-8"
	defaultExtension = ".md"

	sourceSuffix         = "_source"
	targetSuffix         = "_target"
	simplifySourceSuffix = "_simplify_source"
	simplifyTargetSuffix = "_simplify_target"
)

// Load parses the INI configuration at path and returns the typed Config
// along with warnings for keys that were skipped. The error, when non-nil,
// is fatal to the run and matches ErrMissingConfigFile, ErrMissingSection,
// or wraps the underlying INI parse failure.
func Load(path string) (*types.Config, []string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingConfigFile, path)
		}
		return nil, nil, fmt.Errorf("checking config file %s: %w", path, err)
	}

	// Viper dropped its built-in INI codec; register the extracted one.
	registry := viper.NewCodecRegistry()
	if err := registry.RegisterCodec("ini", encini.Codec{}); err != nil {
		return nil, nil, fmt.Errorf("registering ini codec: %w", err)
	}

	v := viper.NewWithOptions(viper.WithCodecRegistry(registry))
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	v.SetDefault("settings.encoding", defaultEncoding)
	v.SetDefault("settings.file_extension", defaultExtension)

	// Environment overrides for the global settings only; directory pairs
	// always come from the file.
	_ = v.BindEnv("settings.encoding", "SS_ENCODING")
	_ = v.BindEnv("settings.file_extension", "SS_FILE_EXTENSION")
	_ = v.BindEnv("settings.file_pattern", "SS_FILE_PATTERN")

	if err := v.ReadInConfig(); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	dirs := v.GetStringMapString("directories")
	if len(dirs) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", ErrMissingSection, path)
	}

	pairs, warnings := buildPairs(dirs)

	cfg := &types.Config{
		Path:  path,
		Pairs: pairs,
		Settings: types.Settings{
			Encoding:      v.GetString("settings.encoding"),
			FileExtension: v.GetString("settings.file_extension"),
			FilePattern:   v.GetString("settings.file_pattern"),
		},
	}
	return cfg, warnings, nil
}

// buildPairs pattern-matches the [directories] keys into typed pairs.
// Recognized shapes, per operation:
//
//	{name}_source / {name}_target                   -> split
//	{name}_simplify_source / {name}_simplify_target -> simplify
//
// A source key without its target counterpart (or the reverse) produces a
// warning and no pair. Keys matching neither shape are ignored so that new
// key kinds can be added without breaking old binaries.
func buildPairs(dirs map[string]string) ([]types.DirectoryPair, []string) {
	keys := make([]string, 0, len(dirs))
	for k := range dirs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var pairs []types.DirectoryPair
	var warnings []string

	for _, key := range keys {
		switch {
		case strings.HasSuffix(key, simplifySourceSuffix):
			name := strings.TrimSuffix(key, simplifySourceSuffix)
			target, ok := dirs[name+simplifyTargetSuffix]
			if !ok {
				warnings = append(warnings, fmt.Sprintf("%s has no matching %s%s, skipping", key, name, simplifyTargetSuffix))
				continue
			}
			pairs = append(pairs, types.DirectoryPair{
				Name:   name,
				Source: dirs[key],
				Target: target,
				Op:     types.OpSimplify,
			})

		case strings.HasSuffix(key, sourceSuffix):
			name := strings.TrimSuffix(key, sourceSuffix)
			target, ok := dirs[name+targetSuffix]
			if !ok {
				warnings = append(warnings, fmt.Sprintf("%s has no matching %s%s, skipping", key, name, targetSuffix))
				continue
			}
			pairs = append(pairs, types.DirectoryPair{
				Name:   name,
				Source: dirs[key],
				Target: target,
				Op:     types.OpSplit,
			})

		case strings.HasSuffix(key, simplifyTargetSuffix):
			name := strings.TrimSuffix(key, simplifyTargetSuffix)
			if _, ok := dirs[name+simplifySourceSuffix]; !ok {
				warnings = append(warnings, fmt.Sprintf("%s has no matching %s%s, skipping", key, name, simplifySourceSuffix))
			}

		case strings.HasSuffix(key, targetSuffix):
			name := strings.TrimSuffix(key, targetSuffix)
			if _, ok := dirs[name+sourceSuffix]; !ok {
				warnings = append(warnings, fmt.Sprintf("%s has no matching %s%s, skipping", key, name, sourceSuffix))
			}
		}
		// Anything else is a forward-compatible unknown key.
	}

	return pairs, warnings
}

// Sample is a minimal ss.ini printed as a hint when the configuration file
// is missing.
const Sample = `[directories]
base_source = Src/Base
base_target = Src/Base/detailed
base_simplify_source = Src/Base/detailed
base_simplify_target = Src/Base/simplified

[settings]
encoding = utf-8
file_extension = .md
`
