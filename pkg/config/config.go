// Package config loads cv-tailor settings from a YAML file and CV_TAILOR_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikogura/cv-tailor/pkg/renderer"
	"github.com/nikogura/cv-tailor/pkg/scorer"
	"github.com/nikogura/cv-tailor/pkg/selector"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. CV_TAILOR_OUTPUT_DIR.
const EnvPrefix = "CV_TAILOR"

// Config represents the application configuration.
type Config struct {
	ProfileLocation string           `mapstructure:"profile_location"`
	Company         string           `mapstructure:"company"`
	Role            string           `mapstructure:"role"`
	OutputDir       string           `mapstructure:"output_dir"`
	Typesetter      TypesetterConfig `mapstructure:"typesetter"`
	Selection       SelectionConfig  `mapstructure:"selection"`
	Logging         LoggingConfig    `mapstructure:"logging"`
}

// TypesetterConfig controls PDF compilation.
type TypesetterConfig struct {
	Command string        `mapstructure:"command"`
	Timeout time.Duration `mapstructure:"timeout"`
	Skip    bool          `mapstructure:"skip"`
}

// SelectionConfig selects the scoring and ranking policies.
type SelectionConfig struct {
	TieBreak     string `mapstructure:"tie_break"`
	KeywordMatch string `mapstructure:"keyword_match"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

type setting struct {
	key   string
	value any
}

// Order matters: it is the order keys appear in a generated config file.
//
//nolint:gochecknoglobals // Default settings
var defaults = []setting{
	{key: "profile_location", value: ""},
	{key: "company", value: renderer.DefaultCompany},
	{key: "role", value: renderer.DefaultRole},
	{key: "output_dir", value: "./output"},
	{key: "typesetter.command", value: renderer.DefaultTypesetter},
	{key: "typesetter.timeout", value: "2m"},
	{key: "typesetter.skip", value: false},
	{key: "selection.tie_break", value: selector.TieBreakLexical},
	{key: "selection.keyword_match", value: scorer.MatchSubstring},
	{key: "logging.json", value: false},
	{key: "logging.debug", value: false},
}

// DefaultPath returns ~/.cv-tailor/config.yaml.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}

	path = filepath.Join(homeDir, ".cv-tailor", "config.yaml")
	return path, err
}

// Load reads configuration with environment variable overrides. An empty configPath
// means the default location, which may be absent; an explicit path must exist.
func Load(configPath string) (cfg Config, err error) {
	v := viper.New()
	for _, s := range defaults {
		v.SetDefault(s.key, s.value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		v.SetConfigFile(path)
		err = v.ReadInConfig()
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case configPath != "" && os.IsNotExist(statErr):
		err = errors.Errorf("config file not found: %s (run 'cv-tailor init' to create)", path)
		return cfg, err
	case configPath != "":
		err = errors.Wrapf(statErr, "failed to read config file: %s", path)
		return cfg, err
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		err = errors.Wrap(err, "failed to decode config")
		return cfg, err
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks enums, durations and paths.
func (c *Config) Validate() (err error) {
	if c.OutputDir == "" {
		err = errors.New("output_dir is required in config")
		return err
	}

	if c.Typesetter.Command == "" {
		err = errors.New("typesetter.command is required in config")
		return err
	}

	if c.Typesetter.Timeout <= 0 {
		err = errors.Errorf("typesetter.timeout must be positive, got %s", c.Typesetter.Timeout)
		return err
	}

	_, err = selector.PeriodOrderByName(c.Selection.TieBreak)
	if err != nil {
		err = errors.Wrap(err, "selection.tie_break")
		return err
	}

	_, err = scorer.MatcherByName(c.Selection.KeywordMatch)
	if err != nil {
		err = errors.Wrap(err, "selection.keyword_match")
		return err
	}

	if c.ProfileLocation != "" {
		_, err = os.Stat(c.ProfileLocation)
		if os.IsNotExist(err) {
			err = errors.Errorf("profile file not found: %s", c.ProfileLocation)
			return err
		}
		if err != nil {
			err = errors.Wrapf(err, "failed to stat profile file: %s", c.ProfileLocation)
			return err
		}
	}

	return err
}

// Selector builds the selector described by the selection settings.
func (c *Config) Selector() (s *selector.Selector, err error) {
	var order selector.PeriodOrder
	order, err = selector.PeriodOrderByName(c.Selection.TieBreak)
	if err != nil {
		return s, err
	}

	var match scorer.Matcher
	match, err = scorer.MatcherByName(c.Selection.KeywordMatch)
	if err != nil {
		return s, err
	}

	s = selector.New(selector.WithPeriodOrder(order), selector.WithMatcher(match))
	return s, err
}

// InitConfig writes a config file holding the defaults, pointing profile_location at
// profilePath. It refuses to overwrite an existing file.
func InitConfig(configPath, profilePath string) (path string, err error) {
	path = configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return path, err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return path, err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return path, err
	}

	var data []byte
	data, err = yaml.Marshal(defaultDocument(profilePath))
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return path, err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return path, err
	}

	return path, err
}

// defaultDocument nests the dotted defaults into a YAML mapping node, keeping key order.
func defaultDocument(profilePath string) (doc *yaml.Node) {
	doc = &yaml.Node{Kind: yaml.MappingNode}
	sections := make(map[string]*yaml.Node)

	for _, s := range defaults {
		value := s.value
		if s.key == "profile_location" {
			value = profilePath
		}

		var valueNode yaml.Node
		// Scalars always encode.
		_ = valueNode.Encode(value)

		parent := doc
		key := s.key
		if section, leaf, found := strings.Cut(s.key, "."); found {
			key = leaf
			parent = sections[section]
			if parent == nil {
				parent = &yaml.Node{Kind: yaml.MappingNode}
				sections[section] = parent
				doc.Content = append(doc.Content, scalar(section), parent)
			}
		}

		parent.Content = append(parent.Content, scalar(key), &valueNode)
	}

	return doc
}

func scalar(value string) (node *yaml.Node) {
	node = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
	return node
}
