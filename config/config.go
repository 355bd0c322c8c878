// Package config loads jpp.toml project files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dhamidi/jpp/java/parser"
)

// FileName is the name of the project file searched for by FindAndLoad.
const FileName = "jpp.toml"

var (
	ErrUnknownKey = errors.New("unknown configuration key")
	ErrSameOutput = errors.New("output path equals source path")
)

// Config is the contents of a jpp.toml file:
//
//	[features]
//	enable = ["print-statements"]
//	disable = ["extended-modifiers"]
//
//	[source]
//	suffix = ".jpp"
//	encoding = "ISO-8859-1"
//
//	[output]
//	suffix = ".java"
//	minimal-parens = true
type Config struct {
	Features FeaturesConfig `toml:"features"`
	Source   SourceConfig   `toml:"source"`
	Output   OutputConfig   `toml:"output"`
}

// FeaturesConfig adjusts the default feature set. Disable wins over
// Enable when a feature is named in both.
type FeaturesConfig struct {
	Enable  []string `toml:"enable"`
	Disable []string `toml:"disable"`
}

type SourceConfig struct {
	Suffix string `toml:"suffix"`
	// Encoding is an IANA character set name.
	Encoding string `toml:"encoding"`
}

type OutputConfig struct {
	Suffix        string `toml:"suffix"`
	MinimalParens bool   `toml:"minimal-parens"`
}

func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{Suffix: ".jpp", Encoding: "UTF-8"},
		Output: OutputConfig{Suffix: ".java"},
	}
}

// FindAndLoad searches startDir and its parents for jpp.toml and loads the
// first one found. Without a project file it returns the defaults and an
// empty path.
func FindAndLoad(startDir string) (*Config, string, error) {
	path := FindConfigFile(startDir)
	if path == "" {
		return DefaultConfig(), "", nil
	}
	c, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return c, path, nil
}

// FindConfigFile returns the path of the nearest jpp.toml at or above
// startDir, or "".
func FindConfigFile(startDir string) string {
	dir := startDir
	for {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load decodes the file at path on top of the defaults.
func Load(path string) (*Config, error) {
	c := DefaultConfig()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if _, err := c.FeatureSet(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes TOML text on top of the defaults.
func Parse(text string) (*Config, error) {
	c := DefaultConfig()
	md, err := toml.Decode(text, c)
	if err != nil {
		return nil, err
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	if _, err := c.FeatureSet(); err != nil {
		return nil, err
	}
	return c, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
}

// FeatureSet returns the default features adjusted by the [features]
// section.
func (c *Config) FeatureSet() (parser.Features, error) {
	set := parser.DefaultFeatures()
	for _, name := range c.Features.Enable {
		f, err := parser.ParseFeature(name)
		if err != nil {
			return 0, fmt.Errorf("features.enable: %w", err)
		}
		set = set.Enable(f)
	}
	for _, name := range c.Features.Disable {
		f, err := parser.ParseFeature(name)
		if err != nil {
			return 0, fmt.Errorf("features.disable: %w", err)
		}
		set = set.Disable(f)
	}
	return set, nil
}

// OutputPath maps a source file name to the name of its transpiled
// output. A file without the source suffix has its extension replaced.
// A source that would be its own output, such as Main.java with the
// default suffixes, yields ErrSameOutput.
func (c *Config) OutputPath(source string) (string, error) {
	base := strings.TrimSuffix(source, c.Source.Suffix)
	if base == source {
		base = strings.TrimSuffix(source, filepath.Ext(source))
	}
	out := base + c.Output.Suffix
	if filepath.Clean(out) == filepath.Clean(source) {
		return "", fmt.Errorf("%s: %w", source, ErrSameOutput)
	}
	return out, nil
}

// ProjectRoot returns the directory holding the project file at path.
func ProjectRoot(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Dir(path)
}
