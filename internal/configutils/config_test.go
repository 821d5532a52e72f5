package configutils

import (
	"io"
	"os"
	"path/filepath"
	"prtrack/internal/pkg/fs"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type mockConfigMerger struct {
	err error
}

func (m *mockConfigMerger) MergeConfig(in io.Reader) error {
	return m.err
}

type mockFlagSet struct {
	value     string
	boolValue bool
	err       error
}

func (m *mockFlagSet) GetString(f string) (string, error) {
	return m.value, m.err
}

func (m *mockFlagSet) GetBool(f string) (bool, error) {
	return m.boolValue, m.err
}

// fakeFiles swaps the file seams for an in-memory set of files.
func fakeFiles(t *testing.T, files map[string]string) {
	oldFileExists, oldLoadFile, oldConfigDir := fileExists, loadFile, getConfigDir
	t.Cleanup(func() {
		fileExists, loadFile, getConfigDir = oldFileExists, oldLoadFile, oldConfigDir
	})

	getConfigDir = func() (string, error) { return "/home/u/.config/prtrack", nil }
	fileExists = func(name string, _ fs.Filesystem) error {
		if _, ok := files[name]; !ok {
			return os.ErrNotExist
		}
		return nil
	}
	loadFile = func(name string, _ fs.Filesystem) (io.Reader, error) {
		content, ok := files[name]
		if !ok {
			return nil, errors.Wrap(os.ErrNotExist, name)
		}
		return strings.NewReader(content), nil
	}
}

func Test_mergeConfig(t *testing.T) {
	t.Run("returns nil when merge succeeds", func(t *testing.T) {
		err := mergeConfig(nil, &mockConfigMerger{nil})
		assert.Equal(t, nil, err)
	})

	t.Run("returns error when merge fails", func(t *testing.T) {
		vErr := errors.New("mergeFailed")
		err := mergeConfig(nil, &mockConfigMerger{vErr})
		assert.EqualError(t, err, vErr.Error())
	})
}

func Test_fileExists(t *testing.T) {
	t.Run("returns nil if file exists", func(t *testing.T) {
		err := fileExists("", fs.MockFS{})
		assert.Equal(t, nil, err)
	})

	t.Run("returns error if file does not exist", func(t *testing.T) {
		err := fileExists("", fs.MockFS{Err: os.ErrNotExist})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("returns error if file is a directory", func(t *testing.T) {
		err := fileExists("", fs.MockFS{Info: fs.MockFileInfo{IsDirValue: true}})
		assert.Equal(t, ErrConfigFileIsDir, err)
	})
}

func Test_loadFile(t *testing.T) {
	oldFileExists := fileExists
	defer func() { fileExists = oldFileExists }()

	t.Run("fails if file does not exist", func(t *testing.T) {
		vErr := errors.New("file err")
		fileExists = func(string, fs.Filesystem) error { return vErr }
		_, err := loadFile("", nil)
		assert.EqualError(t, err, vErr.Error())
	})

	t.Run("fails if file cannot be opened", func(t *testing.T) {
		vErr := errors.New("open err")
		fileExists = func(string, fs.Filesystem) error { return nil }
		_, err := loadFile("", fs.MockFS{Err: vErr})
		assert.EqualError(t, err, vErr.Error())
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Run("falls back to defaults without a config file", func(t *testing.T) {
		fakeFiles(t, map[string]string{})

		v, err := DefaultConfig()
		assert.NoError(t, err)
		assert.Equal(t, DefaultAPIURL, v.GetString("api.url"))
		assert.Equal(t, DefaultMenuWidth, v.GetInt("menu.width"))
		assert.False(t, v.GetBool("general.useNerdFontIcons"))
	})

	t.Run("loads the first existing file", func(t *testing.T) {
		fakeFiles(t, map[string]string{
			"/home/u/.config/prtrack/config.json": `{"api": {"url": "http://api.local"}}`,
			"/home/u/.config/prtrack/config.toml": "[api]\nurl = \"http://ignored\"\n",
		})

		v, err := DefaultConfig()
		assert.NoError(t, err)
		assert.Equal(t, "http://api.local", v.GetString("api.url"))
		assert.Equal(t, "info", v.GetString("log.level"))
	})

	t.Run("fails on a malformed file", func(t *testing.T) {
		fakeFiles(t, map[string]string{
			"/home/u/.config/prtrack/config.yaml": "api: [",
		})

		_, err := DefaultConfig()
		assert.Error(t, err)
	})

	t.Run("fails without a home directory", func(t *testing.T) {
		fakeFiles(t, map[string]string{})
		getConfigDir = func() (string, error) { return "", errors.New("no home") }

		_, err := DefaultConfig()
		assert.Equal(t, ErrHomeDirNotFound, err)
	})
}

func TestLoadConfigForPath(t *testing.T) {
	t.Run("local config overrides global config", func(t *testing.T) {
		fakeFiles(t, map[string]string{
			"/home/u/.config/prtrack/config.yaml":    "api:\n  url: http://global\nlog:\n  level: warn\n",
			filepath.Join("/work", LocalConfigName): "api:\n  url: http://local\n",
		})

		v, err := LoadConfigForPath("/work")
		assert.NoError(t, err)
		assert.Equal(t, "http://local", v.GetString("api.url"))
		assert.Equal(t, "warn", v.GetString("log.level"))
	})

	t.Run("accepts a local config in any supported format", func(t *testing.T) {
		fakeFiles(t, map[string]string{
			filepath.Join("/work", LocalConfigName): "[general]\nuseNerdFontIcons = true\n",
		})

		v, err := LoadConfigForPath("/work")
		assert.NoError(t, err)
		assert.True(t, v.GetBool("general.useNerdFontIcons"))
	})
}

func TestLoad(t *testing.T) {
	oldFS := filesystem
	defer func() { filesystem = oldFS }()

	t.Run("merges an explicit config file last", func(t *testing.T) {
		filesystem = fs.MockFS{WorkingDir: "/work"}
		fakeFiles(t, map[string]string{
			filepath.Join("/work", LocalConfigName): "api:\n  url: http://local\n",
			"/etc/prtrack.toml":                     "[api]\nurl = \"http://explicit\"\n",
		})

		v, err := Load("/etc/prtrack.toml")
		assert.NoError(t, err)
		assert.Equal(t, "http://explicit", v.GetString("api.url"))
	})

	t.Run("fails when the explicit file is missing", func(t *testing.T) {
		filesystem = fs.MockFS{WorkingDir: "/work"}
		fakeFiles(t, map[string]string{})

		_, err := Load("/etc/missing.yaml")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("rejects unknown file types", func(t *testing.T) {
		filesystem = fs.MockFS{WorkingDir: "/work"}
		fakeFiles(t, map[string]string{})

		_, err := Load("/etc/prtrack.ini")
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("fails when the working directory is unknown", func(t *testing.T) {
		vErr := errors.New("getwd")
		filesystem = fs.MockFS{Err: vErr}

		_, err := Load("")
		assert.Equal(t, vErr, err)
	})
}

func TestGetStringFlagOrDefault(t *testing.T) {
	assert.Equal(t, "x", GetStringFlagOrDefault(&mockFlagSet{value: "x"}, "f", "d"))
	assert.Equal(t, "d", GetStringFlagOrDefault(&mockFlagSet{value: ""}, "f", "d"))
	assert.Equal(t, "d", GetStringFlagOrDefault(&mockFlagSet{value: "x", err: errors.New("no flag")}, "f", "d"))
}

func TestGetBoolFlagOrDefault(t *testing.T) {
	assert.True(t, GetBoolFlagOrDefault(&mockFlagSet{boolValue: true}, "f", false))
	assert.True(t, GetBoolFlagOrDefault(&mockFlagSet{err: errors.New("no flag")}, "f", true))
}
