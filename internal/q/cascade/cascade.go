package cascade

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
)

// Loader is a prioritized list of configuration sources. The zero value is ready to use; New exists for chaining.
type Loader struct {
	sources []source // Low to high priority.
}

// Providence records where a value came from.
type Providence struct {
	SourceType       string // "default", "json_file", or "env".
	SourceIdentifier string // File path for "json_file"; env var name for "env".
}

func (p Providence) IsSet() bool {
	return p.SourceType != ""
}

func (p Providence) Default() bool {
	return p.SourceType == "default"
}

func (p Providence) String() string {
	switch {
	case !p.IsSet():
		return "unset"
	case p.SourceIdentifier == "":
		return p.SourceType
	default:
		return p.SourceType + " " + p.SourceIdentifier
	}
}

var providenceType = reflect.TypeOf(Providence{})

func New() *Loader {
	return &Loader{}
}

// WithDefaults adds m as a source of defaults. Values must be strings, bools, or numbers.
func (c *Loader) WithDefaults(m map[string]any) *Loader {
	c.sources = append(c.sources, defaultsSource(m))
	return c
}

// WithJSONFile adds the JSON object in the file at path, which is expanded with ExpandPath when read.
func (c *Loader) WithJSONFile(path string) *Loader {
	c.sources = append(c.sources, jsonFileSource{path: path})
	return c
}

// WithNearestJSONFile searches from start (a directory or file; "" means the working directory) up to the filesystem root for the first non-empty file at the
// relative path fileName, and adds it. If none is found the loader is unchanged. It panics if fileName is absolute.
func (c *Loader) WithNearestJSONFile(fileName string, start string) *Loader {
	if filepath.IsAbs(fileName) {
		panic("cascade: fileName must be relative")
	}
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return c
		}
		start = wd
	}
	start = ExpandPath(start)
	if fi, err := os.Stat(start); err == nil && !fi.IsDir() {
		start = filepath.Dir(start)
	}

	for dir := start; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, fileName)
		if data, err := os.ReadFile(candidate); err == nil && strings.TrimSpace(string(data)) != "" {
			c.sources = append(c.sources, jsonFileSource{path: candidate})
			return c
		}
		if filepath.Dir(dir) == dir {
			return c
		}
	}
}

// WithEnv adds environment variables, mapping config key to variable name. Unset and empty variables contribute nothing.
func (c *Loader) WithEnv(m map[string]string) *Loader {
	c.sources = append(c.sources, envSource(m))
	return c
}

// StrictlyLoad applies every source to dest, a non-nil pointer to a struct, then checks required fields.
func (c *Loader) StrictlyLoad(dest any) error {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("dest must be a non-nil pointer to struct, got %T", dest)
	}
	structVal := v.Elem()
	fields := indexFields(structVal.Type())

	present := map[string]bool{}
	for _, src := range c.sources {
		values, err := src.values()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				continue
			}
			return fmt.Errorf("%s: %w", src.name(), err)
		}
		for key, raw := range values {
			f, ok := fields[strings.ToLower(key)]
			if !ok {
				continue
			}
			if err := setField(structVal.Field(f.index), raw); err != nil {
				return fmt.Errorf("%s: key %q: %w", src.name(), key, err)
			}
			if f.providence >= 0 {
				structVal.Field(f.providence).Set(reflect.ValueOf(src.providence(key)))
			}
			present[f.key] = true
		}
	}

	for key, f := range fields {
		if f.required && !present[key] {
			return fmt.Errorf("required config key %q is not set", key)
		}
	}
	return nil
}

type fieldInfo struct {
	key        string
	index      int
	providence int // Index of the XProvidence field, or -1.
	required   bool
}

// indexFields maps each lowercase key to the settable field it names.
func indexFields(t reflect.Type) map[string]fieldInfo {
	byName := map[string]int{}
	for i := 0; i < t.NumField(); i++ {
		byName[t.Field(i).Name] = i
	}

	out := map[string]fieldInfo{}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Type == providenceType {
			continue
		}
		key, required := fieldKey(sf)
		if key == "-" {
			continue
		}
		info := fieldInfo{key: key, index: i, providence: -1, required: required}
		if j, ok := byName[sf.Name+"Providence"]; ok && t.Field(j).Type == providenceType {
			info.providence = j
		}
		out[key] = info
	}
	return out
}

// fieldKey returns the lowercase key for sf (cascade tag name, else json tag name, else field name) and whether it is required.
func fieldKey(sf reflect.StructField) (string, bool) {
	name, opts, _ := strings.Cut(sf.Tag.Get("cascade"), ",")
	required := false
	for _, opt := range strings.Split(opts, ",") {
		if strings.TrimSpace(opt) == "required" {
			required = true
		}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		jsonName, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if jsonName != "-" {
			name = jsonName
		}
	}
	if name == "" {
		name = sf.Name
	}
	return strings.ToLower(name), required
}

// setField assigns raw (string, bool, float64, or int) to field, coercing between scalar kinds.
func setField(field reflect.Value, raw any) error {
	switch field.Kind() {
	case reflect.String:
		switch v := raw.(type) {
		case string:
			field.SetString(v)
		case bool:
			field.SetString(strconv.FormatBool(v))
		case int:
			field.SetString(strconv.Itoa(v))
		case float64:
			field.SetString(strconv.FormatFloat(v, 'f', -1, 64))
		default:
			return fmt.Errorf("cannot use %T as string", raw)
		}

	case reflect.Bool:
		switch v := raw.(type) {
		case bool:
			field.SetBool(v)
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("cannot parse %q as bool", v)
			}
			field.SetBool(b)
		default:
			return fmt.Errorf("cannot use %T as bool", raw)
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		switch v := raw.(type) {
		case int:
			n = int64(v)
		case float64:
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("cannot use %v as int", v)
			}
			n = int64(v)
		case string:
			parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return fmt.Errorf("cannot parse %q as int", v)
			}
			n = parsed
		default:
			return fmt.Errorf("cannot use %T as int", raw)
		}
		if field.OverflowInt(n) {
			return fmt.Errorf("%d overflows %s", n, field.Type())
		}
		field.SetInt(n)

	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}
	return nil
}
