package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"sigs.k8s.io/yaml"

	"dashcheck/internal/model"
)

// LoadFile reads the config file at path. The file is optional: a missing or
// unreadable file, and any entry that is unknown, null, blank or of the wrong
// shape, is reported through warn and skipped.
func LoadFile(path string, warn Warnf) model.Values {
	values := model.Values{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			warn("Config file %s not found, using defaults and CLI arguments", path)
		} else {
			warn("Unable to read config file %s: %v", path, err)
		}
		return values
	}

	raw, err := decodeObject(path, data)
	if err != nil {
		warn("Ignoring config file %s: %v", path, err)
		return values
	}

	for key, v := range raw {
		if !model.IsParam(key) {
			warn("Ignoring unknown config key %q", key)
			continue
		}
		p := model.Param(key)
		if p == model.ParamConfigFile {
			warn("Ignoring config key %q: it can only be set on the command line", key)
			continue
		}
		if v == nil {
			warn("Ignoring config key %q: no value", key)
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			warn("Ignoring config key %q: blank value", key)
			continue
		}

		val, ok := coerce(model.KindOf(p), v)
		if !ok {
			warn("Ignoring config key %q: invalid value %v", key, v)
			continue
		}
		values[p] = val
	}
	return values
}

func decodeObject(path string, data []byte) (map[string]any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, err
		}
		data = converted
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func coerce(kind model.Kind, v any) (any, bool) {
	switch kind {
	case model.KindInt:
		switch n := v.(type) {
		case float64:
			return countFromFloat(n)
		case string:
			return parseCount(strings.TrimSpace(n))
		}
	case model.KindBool:
		switch b := v.(type) {
		case bool:
			return b, true
		case string:
			parsed, err := strconv.ParseBool(strings.TrimSpace(b))
			return parsed, err == nil
		}
	default:
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return nil, false
}
