// Package config loads CLI settings from an optional YAML file and
// PLAYERSTYLE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/playerstyle/internal/selection"
	"github.com/alexisbeaulieu97/playerstyle/internal/validation"
	pserrors "github.com/alexisbeaulieu97/playerstyle/pkg/errors"
)

const (
	dirName   = ".playerstyle"
	fileName  = "config"
	fileType  = "yaml"
	envPrefix = "PLAYERSTYLE"

	// Package names contain dots, so nested keys use a different delimiter.
	keyDelimiter = "::"
)

// Settings are the user-tunable defaults of the CLI.
type Settings struct {
	ContentDir  string            `mapstructure:"content_dir" yaml:"content_dir,omitempty"`
	CatalogFile string            `mapstructure:"catalog_file" yaml:"catalog_file,omitempty"`
	LogLevel    string            `mapstructure:"log_level" yaml:"log_level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	HumanLogs   bool              `mapstructure:"human_logs" yaml:"human_logs"`
	CDNBase     string            `mapstructure:"cdn_base" yaml:"cdn_base,omitempty" validate:"omitempty,url"`
	Versions    map[string]string `mapstructure:"versions" yaml:"versions,omitempty" validate:"dive,keys,npm_package,endkeys,semver_constraint"`
	Defaults    Defaults          `mapstructure:"defaults" yaml:"defaults"`
}

// Defaults pre-select picker and snippet options when no flag is given.
type Defaults struct {
	Media     string `mapstructure:"media" yaml:"media" validate:"omitempty,slug"`
	Framework string `mapstructure:"framework" yaml:"framework" validate:"omitempty,oneof=html js react vue lit svelte"`
	Embed     string `mapstructure:"embed" yaml:"embed" validate:"omitempty,oneof=packaged template"`
}

// Selection returns the configured defaults, coerced like request parameters.
func (d Defaults) Selection() selection.Selection {
	return selection.Selection{
		Media:     selection.ParseMedia(d.Media),
		Framework: selection.ParseFramework(d.Framework),
		Embed:     selection.ParseEmbed(d.Embed),
	}
}

// Options control where Load looks for settings.
type Options struct {
	// Path is an explicit config file. When empty FilePath is tried and a
	// missing file is not an error.
	Path string
}

// Dir returns the path to the config directory (~/.playerstyle/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return dirName
	}
	return filepath.Join(home, dirName)
}

// FilePath returns the default config file path (~/.playerstyle/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load reads settings from the config file and the environment, then
// validates them.
func Load(opts Options) (*Settings, error) {
	v := newViper()

	path := opts.Path
	explicit := path != ""
	if !explicit {
		path = FilePath()
	}

	if err := readFile(v, path, explicit); err != nil {
		return nil, err
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, pserrors.NewParseError(path, 0, fmt.Errorf("decode settings: %w", err))
	}

	if err := validation.Struct(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func newViper() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	v.SetConfigType(fileType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_"))
	v.AutomaticEnv()

	// Defaults register every key so AutomaticEnv applies on Unmarshal.
	v.SetDefault("content_dir", "")
	v.SetDefault("catalog_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("human_logs", false)
	v.SetDefault("cdn_base", "")
	v.SetDefault("defaults"+keyDelimiter+"media", "")
	v.SetDefault("defaults"+keyDelimiter+"framework", "")
	v.SetDefault("defaults"+keyDelimiter+"embed", "")
	return v
}

func readFile(v *viper.Viper, path string, explicit bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return pserrors.NewParseError(path, 0, err)
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return pserrors.NewParseError(path, 0, err)
	}
	return nil
}
