// Package run implements program subcommands.
package run

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cssync/config"
	"cssync/profile"
	"cssync/state"
)

// ErrDestinationExists is returned when output file is present and
// overwriting was not requested.
var ErrDestinationExists = errors.New("destination already exists")

// loadStylesheet reads and decodes stylesheet file. Missing file is an empty
// stylesheet when allowMissing is set.
func loadStylesheet(env *state.LocalEnv, path string, allowMissing bool, log *zap.Logger) ([]byte, codePage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			log.Info("Stylesheet does not exist, starting from empty one", zap.String("file", path))
			return nil, codePage{name: "UTF-8", source: "default"}, nil
		}
		return nil, codePage{}, fmt.Errorf("unable to read stylesheet: %w", err)
	}
	if err := env.Rpt.StoreCopy("input/"+config.CleanFileName(filepath.Base(path)), path); err != nil {
		log.Warn("Unable to store stylesheet in report", zap.Error(err))
	}

	var fallback = env.CodePage
	if fallback == nil && env.Cfg != nil {
		if fallback, err = lookupEncoding(env.Cfg.Encoding.Input); err != nil {
			return nil, codePage{}, fmt.Errorf("bad input encoding in configuration: %w", err)
		}
	}
	text, cp, err := decodeStylesheet(data, env.CodePage, fallback, log)
	if err != nil {
		return nil, cp, err
	}
	log.Debug("Stylesheet loaded", zap.String("file", path), zap.Int("bytes", len(data)), zap.String("charset", cp.name), zap.String("from", cp.source))
	return text, cp, nil
}

// loadProfile decodes and validates YAML profile. Empty document is an empty
// profile.
func loadProfile(env *state.LocalEnv, path string) (*profile.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read profile: %w", err)
	}
	env.Rpt.StoreData("input/"+config.CleanFileName(filepath.Base(path)), data)
	return decodeProfile(data)
}

func decodeProfile(data []byte) (*profile.Profile, error) {
	p := &profile.Profile{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to decode profile: %w", err)
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return p, nil
}

func encodeProfile(p *profile.Profile) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("unable to encode profile: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("unable to encode profile: %w", err)
	}
	return buf.Bytes(), nil
}

// writeOutput puts data into named file, or to stdout when name is empty.
func writeOutput(name string, data []byte, overwrite bool, log *zap.Logger) error {
	if len(name) == 0 {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("unable to write output: %w", err)
		}
		return nil
	}
	if !overwrite {
		if _, err := os.Stat(name); err == nil {
			return fmt.Errorf("%w: %s", ErrDestinationExists, name)
		}
	}
	if dir := filepath.Dir(name); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create destination directory: %w", err)
		}
	}
	if err := os.WriteFile(name, data, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	log.Debug("Output written", zap.String("file", name), zap.Int("bytes", len(data)))
	return nil
}
