package configutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"prtrack/internal/pkg/fs"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

const (
	AppName         = "prtrack"
	LocalConfigName = ".prtrackcfg"

	DefaultAPIURL  = "http://localhost:4000"
	DefaultLogFile = "~/.local/state/prtrack/prtrack.log"
)

// Terminal cells, not pixels.
const (
	DefaultMenuWidth  = 26
	DefaultMenuHeight = 4
)

type FlagSet interface {
	GetString(string) (string, error)
	GetBool(string) (bool, error)
}

type configMerger interface {
	MergeConfig(io.Reader) error
}

var (
	ErrHomeDirNotFound  = errors.New("unable to determine the home directory")
	ErrConfigFileIsDir  = errors.New("configuration file is a directory")
	ErrUnsupportedType  = errors.New("unsupported configuration file type")
	supportedConfigExts = []string{"yaml", "json", "toml"}
)

var filesystem fs.Filesystem = fs.OS{}

var mergeConfig = func(in io.Reader, cm configMerger) error {
	return cm.MergeConfig(in)
}

var fileExists = func(filename string, fs fs.Filesystem) error {
	info, err := fs.Stat(filename)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return ErrConfigFileIsDir
	}

	return nil
}

var loadFile = func(filename string, fs fs.Filesystem) (io.Reader, error) {
	err := fileExists(filename, fs)
	if err != nil {
		return nil, err
	}

	f, err := fs.Open(filename)
	if err != nil {
		return nil, err
	}

	return f, nil
}

var loadConfig = func(filename string, v *viper.Viper) error {
	f, err := loadFile(filename, filesystem)
	if err != nil {
		return err
	}
	if c, ok := f.(io.Closer); ok {
		defer c.Close()
	}

	return mergeConfig(f, v)
}

var getConfigDir = func() (string, error) {
	return homedir.Expand(filepath.Join("~/.config", AppName))
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.url", DefaultAPIURL)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", DefaultLogFile)
	v.SetDefault("general.useNerdFontIcons", false)
	v.SetDefault("menu.width", DefaultMenuWidth)
	v.SetDefault("menu.height", DefaultMenuHeight)
}

// mergeAnyType tries every supported format on filename. Missing files are
// not an error.
func mergeAnyType(v *viper.Viper, filename string) error {
	var err error
	for _, ft := range supportedConfigExts {
		v.SetConfigType(ft)
		err = loadConfig(filename, v)
		if err == nil {
			return nil
		}
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		log.Debug().
			Str("file", filename).
			Msgf("config loading failed for type %s, skipping to next filetype", ft)
	}

	return errors.Wrapf(err, "could not load %s", filename)
}

func MergeLocalConfig(v *viper.Viper, path string) error {
	return mergeAnyType(v, filepath.Join(path, LocalConfigName))
}

// DefaultConfig loads the first of ~/.config/prtrack/config.{yaml,json,toml}
// that exists. Having none of them is fine.
func DefaultConfig() (*viper.Viper, error) {
	cfgDir, err := getConfigDir()
	if err != nil {
		return nil, ErrHomeDirNotFound
	}

	v := viper.New()
	SetDefaults(v)
	for _, ft := range supportedConfigExts {
		f := filepath.Join(cfgDir, fmt.Sprintf("config.%s", ft))
		if err := fileExists(f, filesystem); err != nil {
			continue
		}

		v.SetConfigType(ft)
		if err := loadConfig(f, v); err != nil {
			return nil, errors.Wrap(err, "could not load config")
		}
		log.Debug().Str("file", f).Msg("global config loaded")

		return v, nil
	}

	return v, nil
}

// MergeConfigFile merges an explicitly requested file. Unlike the implicit
// files it must exist, and its type comes from the extension.
func MergeConfigFile(v *viper.Viper, filename string) error {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return ErrHomeDirNotFound
	}

	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "yml" {
		ext = "yaml"
	}
	if !slices.Contains(supportedConfigExts, ext) {
		return errors.Wrapf(ErrUnsupportedType, "%s", filename)
	}

	v.SetConfigType(ext)
	if err := loadConfig(filename, v); err != nil {
		return errors.Wrapf(err, "could not load %s", filename)
	}

	return nil
}

func LoadConfigForPath(path string) (*viper.Viper, error) {
	v, err := DefaultConfig()
	if err != nil {
		return nil, err
	}

	err = MergeLocalConfig(v, path)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// Load builds the process configuration: global file, then the working
// directory's local file, then cfgFile when it is set.
func Load(cfgFile string) (*viper.Viper, error) {
	wd, err := filesystem.Getwd()
	if err != nil {
		return nil, err
	}

	v, err := LoadConfigForPath(wd)
	if err != nil {
		return nil, err
	}

	if cfgFile != "" {
		if err := MergeConfigFile(v, cfgFile); err != nil {
			return nil, err
		}
	}

	return v, nil
}

func GetBoolFlagOrDefault(fs FlagSet, flag string, d bool) bool {
	v, err := fs.GetBool(flag)
	if err != nil {
		return d
	}

	return v
}

func GetStringFlagOrDefault(fs FlagSet, flag, d string) string {
	s, err := fs.GetString(flag)
	if err != nil || s == "" {
		return d
	}

	return s
}
