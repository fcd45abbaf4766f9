package cascade

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// source supplies flat key/value pairs. Values are strings, bools, ints, or float64s.
type source interface {
	name() string
	values() (map[string]any, error)
	providence(key string) Providence
}

type defaultsSource map[string]any

func (s defaultsSource) name() string { return "Defaults" }

func (s defaultsSource) values() (map[string]any, error) {
	for k, v := range s {
		switch v.(type) {
		case string, bool, int, float64:
		default:
			return nil, fmt.Errorf("key %q: type %T is not allowed", k, v)
		}
	}
	return s, nil
}

func (s defaultsSource) providence(string) Providence {
	return Providence{SourceType: "default"}
}

type jsonFileSource struct {
	path string
}

func (s jsonFileSource) name() string { return "JSON File: " + s.path }

// values reads the file. Empty or whitespace-only files contribute nothing; nested objects and arrays are rejected.
func (s jsonFileSource) values() (map[string]any, error) {
	data, err := os.ReadFile(ExpandPath(s.path))
	if err != nil {
		return nil, fmt.Errorf("read json file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	for k, v := range obj {
		switch v.(type) {
		case nil:
			delete(obj, k)
		case string, bool, float64:
		default:
			return nil, fmt.Errorf("key %q: only scalar values are supported", k)
		}
	}
	return obj, nil
}

func (s jsonFileSource) providence(string) Providence {
	return Providence{SourceType: "json_file", SourceIdentifier: ExpandPath(s.path)}
}

// envSource maps a config key to the environment variable that holds it.
type envSource map[string]string

func (s envSource) name() string { return "ENV" }

func (s envSource) values() (map[string]any, error) {
	out := map[string]any{}
	for key, envVar := range s {
		// An empty variable would otherwise mask a value from a file.
		if val := os.Getenv(envVar); envVar != "" && val != "" {
			out[key] = val
		}
	}
	return out, nil
}

func (s envSource) providence(key string) Providence {
	for k, envVar := range s {
		if strings.EqualFold(k, key) {
			return Providence{SourceType: "env", SourceIdentifier: envVar}
		}
	}
	return Providence{SourceType: "env"}
}
