package config

// loader.go - configuration loading.
//
// Precedence order (highest wins):
//   1. Environment variables  (GGM_MAIN_<KEY>, optionally from --env-file)
//   2. The YAML document
//   3. Defaults   (defaults.go)

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	ggmerr "ggm/internal/errors"
)

const mainSection = "main"

// document is what viper decodes; plugin sections land in Rest and are
// re-read from the YAML node tree to keep their order.
type document struct {
	Main Main                   `mapstructure:"main"`
	Rest map[string]interface{} `mapstructure:",remain"`
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process
// environment without overriding variables that are already set.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("env file %s: %w", path, err)
	}
	return nil
}

// Load reads, decodes and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range mainKeys() {
		_ = v.BindEnv(mainSection + "." + key)
	}

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	var doc document
	err := v.Unmarshal(&doc,
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			yesNoHook,
			secondsHook,
			mapstructure.StringToSliceHookFunc(","),
		)),
		func(dc *mapstructure.DecoderConfig) { dc.ErrorUnused = true },
	)
	if err != nil {
		return nil, &ggmerr.ConfigError{Field: mainSection, Message: err.Error()}
	}

	plugins, err := pluginSections(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{Main: doc.Main, Plugins: plugins}
	for i, ch := range cfg.Main.Channels {
		cfg.Main.Channels[i] = strings.TrimSpace(ch)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("main.port", DefaultPort)
	v.SetDefault("main.tls", true)
	v.SetDefault("main.line_rate", DefaultLineRate)
	v.SetDefault("main.fetch_timeout", DefaultFetchTimeout)
	v.SetDefault("main.quit_message", DefaultQuitMessage)
	v.SetDefault("main.verbose", DefaultVerbosity)
	v.SetDefault("main.log", false)
}

// mainKeys lists the mapstructure keys of Main so each can be bound to
// an environment variable.
func mainKeys() []string {
	t := reflect.TypeOf(Main{})
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("mapstructure"); tag != "" {
			keys = append(keys, tag)
		}
	}
	return keys
}

// pluginSections walks the top-level mapping in document order and
// collects every section except main.
func pluginSections(data []byte) ([]PluginSection, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, nil
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, &ggmerr.ConfigError{Field: "(root)", Message: "expected a mapping of sections"}
	}

	var out []PluginSection
	for i := 0; i+1 < len(top.Content); i += 2 {
		name, body := top.Content[i].Value, top.Content[i+1]
		if name == mainSection {
			continue
		}
		sec := PluginSection{Name: name, Plugin: name, Options: Options{}}
		switch body.Kind {
		case yaml.MappingNode:
		case yaml.ScalarNode:
			if body.Tag != "!!null" {
				return nil, &ggmerr.ConfigError{Field: name, Value: body.Value, Message: "section must be a mapping"}
			}
		default:
			return nil, &ggmerr.ConfigError{Field: name, Message: "section must be a mapping"}
		}
		for j := 0; j+1 < len(body.Content); j += 2 {
			key, val := body.Content[j].Value, body.Content[j+1]
			switch val.Kind {
			case yaml.ScalarNode:
				raw := os.ExpandEnv(val.Value)
				if key == "plugin" {
					sec.Plugin = strings.TrimSpace(raw)
					continue
				}
				sec.Options[key] = Infer(raw)
			case yaml.SequenceNode:
				items := make([]string, 0, len(val.Content))
				for _, item := range val.Content {
					if item.Kind != yaml.ScalarNode {
						return nil, &ggmerr.ConfigError{Field: name + "." + key, Message: "lists may only hold scalars"}
					}
					items = append(items, os.ExpandEnv(item.Value))
				}
				sec.Options[key] = items
			default:
				return nil, &ggmerr.ConfigError{Field: name + "." + key, Message: "nested mappings are not supported"}
			}
		}
		out = append(out, sec)
	}
	return out, nil
}

// ── decode hooks ─────────────────────────────────────────────────────

// yesNoHook lets bool fields take yes/no as well as true/false.
func yesNoHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}
	switch strings.ToLower(strings.TrimSpace(data.(string))) {
	case "yes", "true", "on", "1":
		return true, nil
	case "no", "false", "off", "0", "":
		return false, nil
	}
	return nil, fmt.Errorf("%q is not yes or no", data)
}

var durationType = reflect.TypeOf(time.Duration(0))

// secondsHook reads bare numbers as seconds and strings as Go durations.
func secondsHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != durationType || from == durationType {
		return data, nil
	}
	switch v := data.(type) {
	case int:
		return time.Duration(v) * time.Second, nil
	case float64:
		return time.Duration(v * float64(time.Second)), nil
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return time.Duration(f * float64(time.Second)), nil
		}
		return time.ParseDuration(v)
	}
	return data, nil
}
