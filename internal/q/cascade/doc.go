// Package cascade loads layered, flat configuration into a Go struct.
//
// A Loader holds sources from lowest to highest priority: a defaults map, JSON files (a fixed path, or the nearest one found searching upward), and environment
// variables. StrictlyLoad applies them in order, so later sources win.
//
// Keys are case-insensitive and match a field's `cascade` tag name, else its `json` tag name, else its Go name. Unknown keys are ignored. Values are coerced to
// the field's type when reasonable ("4" to 4, "true" to true, 4 to "4"). A field tagged `cascade:",required"` must be set by some source.
//
// A field named XProvidence of type Providence records which source set field X.
//
// Missing, unreadable, and empty sources contribute nothing. A readable source that cannot be parsed, or a value that cannot be coerced, is an error naming the
// source.
//
// Example
//
//	type Config struct {
//	    Color           string
//	    ColorProvidence cascade.Providence
//	    MaxWidth        int `json:"max_width"`
//	}
//
//	var cfg Config
//	err := cascade.New().
//	    WithDefaults(map[string]any{"color": "auto"}).
//	    WithNearestJSONFile(".app/config.json", "").
//	    WithEnv(map[string]string{"color": "APP_COLOR"}).
//	    StrictlyLoad(&cfg)
package cascade
