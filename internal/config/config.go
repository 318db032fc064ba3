package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/editorui/internal/errors"
	"github.com/vango-dev/editorui/pkg/i18n"
	"github.com/vango-dev/editorui/pkg/toolbar"
)

const (
	// JSONFileName is the JSON configuration file name.
	JSONFileName = "editorui.json"

	// YAMLFileName is the YAML configuration file name.
	YAMLFileName = "editorui.yaml"

	// DefaultPort is the default preview server port.
	DefaultPort = 7070

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultShutdownTimeout bounds graceful shutdown of the preview server.
	DefaultShutdownTimeout = "5s"

	// DefaultNamespace prefixes every exported metric.
	DefaultNamespace = "editorui"
)

// Format is a configuration encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatOf picks the encoding from a file name. Anything that is not
// .yaml or .yml is JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Config represents an editorui.json or editorui.yaml file.
type Config struct {
	// ToolbarItems is the toolbar layout: identifiers, item objects and
	// arrays of those. Empty means the default layout.
	ToolbarItems []any `json:"toolbarItems,omitempty" yaml:"toolbarItems,omitempty"`

	// HideScrollSync hides the scroll-sync toggle.
	HideScrollSync bool `json:"hideScrollSync,omitempty" yaml:"hideScrollSync,omitempty"`

	// Language selects the tooltip and header language.
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	// I18nFile is a YAML translation catalog, relative to the config file.
	I18nFile string `json:"i18nFile,omitempty" yaml:"i18nFile,omitempty"`

	// Preview contains preview server settings.
	Preview PreviewConfig `json:"preview,omitempty" yaml:"preview,omitempty"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	Host string `json:"host,omitempty" yaml:"host,omitempty"`
	Port int    `json:"port,omitempty" yaml:"port,omitempty"`

	// ShutdownTimeout is a duration string such as "5s".
	ShutdownTimeout string `json:"shutdownTimeout,omitempty" yaml:"shutdownTimeout,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Disabled turns off the /metrics endpoint and the HTTP middleware.
	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty"`

	// Namespace prefixes metric names.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Language: i18n.DefaultLanguage,
		Preview: PreviewConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
		},
	}
}

// Load reads configuration from the specified directory. editorui.json
// takes precedence over editorui.yaml.
func Load(dir string) (*Config, error) {
	for _, name := range []string{JSONFileName, YAMLFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E121").
		WithDetail("No " + JSONFileName + " or " + YAMLFileName + " found in " + dir).
		WithSuggestion("Create " + JSONFileName + " or pass --config")
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E121").
				WithDetail("No config file at " + path)
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, err
	}
	cfg.configPath = path
	return cfg, nil
}

// Parse decodes configuration data and applies defaults.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := New()

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse config: " + err.Error()).
			WithSuggestion("Check that the file is valid " + formatName(format)).
			Wrap(err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func formatName(f Format) string {
	if f == FormatYAML {
		return "YAML"
	}
	return "JSON"
}

// SaveTo writes the configuration to path in the format its extension
// names.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if FormatOf(path) == FormatYAML {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Language == "" {
		c.Language = i18n.DefaultLanguage
	}
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Preview.ShutdownTimeout == "" {
		c.Preview.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return errors.New("E122").
			WithDetail("preview.port must be between 0 and 65535")
	}
	if d, err := time.ParseDuration(c.Preview.ShutdownTimeout); err != nil || d < 0 {
		return errors.New("E122").
			WithDetail("preview.shutdownTimeout must be a duration such as \"5s\"")
	}
	if _, err := c.ToolbarSpecs(); err != nil {
		return errors.New("E122").
			WithDetail(err.Error()).
			Wrap(err)
	}
	return nil
}

// ToolbarSpecs converts ToolbarItems into toolbar specs. An empty list
// yields the default layout.
func (c *Config) ToolbarSpecs() ([]toolbar.Spec, error) {
	if len(c.ToolbarItems) == 0 {
		return toolbar.DefaultSpecs(), nil
	}
	return toolbar.ParseSpecs(normalize(c.ToolbarItems))
}

// normalize turns YAML-decoded values into the shapes encoding/json
// produces so both formats parse alike.
func normalize(items []any) []any {
	out := make([]any, len(items))
	for i, v := range items {
		out[i] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case []any:
		return normalize(t)
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			if s, ok := k.(string); ok {
				m[s] = normalizeValue(val)
			}
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = normalizeValue(val)
		}
		return m
	default:
		return v
	}
}

// ShutdownTimeout returns the parsed shutdown timeout, falling back to
// the default on invalid input.
func (c *Config) ShutdownTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Preview.ShutdownTimeout); err == nil && d >= 0 {
		return d
	}
	d, _ := time.ParseDuration(DefaultShutdownTimeout)
	return d
}

// PreviewAddress returns the address string for the preview server.
func (c *Config) PreviewAddress() string {
	return c.Preview.Host + ":" + strconv.Itoa(c.Preview.Port)
}

// PreviewURL returns the full URL for the preview server.
func (c *Config) PreviewURL() string {
	return "http://" + c.PreviewAddress()
}

// I18nPath returns the absolute path to the translation catalog, or ""
// when none is configured.
func (c *Config) I18nPath() string {
	if c.I18nFile == "" {
		return ""
	}
	if filepath.IsAbs(c.I18nFile) {
		return c.I18nFile
	}
	return filepath.Join(c.Dir(), c.I18nFile)
}

// Translator builds the translator for the configured language, loading
// I18nFile when set.
func (c *Config) Translator() (i18n.Translator, error) {
	cat := i18n.NewCatalog()
	if path := c.I18nPath(); path != "" {
		if err := cat.Load(path); err != nil {
			return nil, err
		}
	}
	return cat.Translator(c.Language), nil
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	for _, name := range []string{JSONFileName, YAMLFileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing a config file, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E121").
				WithDetail("No config file found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working
// directory or its nearest parent that has one.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
