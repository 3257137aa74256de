package config

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	intRe   = regexp.MustCompile(`^[+-]?\d+$`)
	floatRe = regexp.MustCompile(`^[+-]?(\d+\.\d*|\.\d+|\d+)([eE][+-]?\d+)?$`)
)

// Infer types a raw option value by its shape: yes/no become bool,
// integer literals int, other numeric literals float64, and anything
// else stays a string.
func Infer(raw string) interface{} {
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "yes":
		return true
	case "no":
		return false
	}
	if intRe.MatchString(s) {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	if floatRe.MatchString(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return raw
}

// Options holds one plugin section's inferred values.  Getters fall back
// to def when the key is absent or has a different shape.
type Options map[string]interface{}

// Has reports whether key was configured.
func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

func (o Options) String(key, def string) string {
	switch v := o[key].(type) {
	case string:
		return v
	case nil:
		return def
	case []string:
		return strings.Join(v, ",")
	default:
		return formatValue(v)
	}
}

func (o Options) Bool(key string, def bool) bool {
	if v, ok := o[key].(bool); ok {
		return v
	}
	return def
}

func (o Options) Int(key string, def int) int {
	if v, ok := o[key].(int); ok {
		return v
	}
	return def
}

func (o Options) Float(key string, def float64) float64 {
	switch v := o[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

// Duration reads a numeric option expressed in unit.
func (o Options) Duration(key string, unit, def time.Duration) time.Duration {
	switch v := o[key].(type) {
	case int:
		return time.Duration(v) * unit
	case float64:
		return time.Duration(v * float64(unit))
	}
	return def
}

// Strings reads a list option; a scalar is split on commas.
func (o Options) Strings(key string) []string {
	switch v := o[key].(type) {
	case []string:
		return v
	case string:
		var out []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func formatValue(v interface{}) string {
	switch x := v.(type) {
	case bool:
		if x {
			return "yes"
		}
		return "no"
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return ""
}
