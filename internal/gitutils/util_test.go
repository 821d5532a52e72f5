package gitutils

import (
	"prtrack/internal/errcodes"
	"prtrack/internal/pkg/fs"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		uri  string
		want *RemoteRepository
	}{
		{"git@github.com:acme/core.git", &RemoteRepository{"github.com", "acme", "core"}},
		{"git@bitbucket.org:acme/core", &RemoteRepository{"bitbucket.org", "acme", "core"}},
		{"ssh://git@github.com/acme/core.git", &RemoteRepository{"github.com", "acme", "core"}},
		{"ssh://git@git.local:2222/acme/core.git", &RemoteRepository{"git.local", "acme", "core"}},
		{"https://github.com/acme/core.git", &RemoteRepository{"github.com", "acme", "core"}},
		{"https://user@github.com/acme/core/", &RemoteRepository{"github.com", "acme", "core"}},
		{"http://localhost:3000/acme/my.repo.git", &RemoteRepository{"localhost", "acme", "my.repo"}},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			got, err := ParseRemoteURL(tt.uri)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("fails on unknown formats", func(t *testing.T) {
		for _, uri := range []string{"", "/srv/git/core", "https://github.com/acme", "git@github.com:core.git"} {
			_, err := ParseRemoteURL(uri)
			assert.ErrorIs(t, err, errcodes.ErrUnableToParseRemoteURI, uri)
		}
	})
}

func TestGetRemoteRepository(t *testing.T) {
	oldOpenRepo := openRepo
	defer func() { openRepo = oldOpenRepo }()

	t.Run("fails when the repository cannot be opened", func(t *testing.T) {
		vErr := errors.New("not a repo")
		openRepo = func(string) (gitRepository, error) { return nil, vErr }

		_, err := GetRemoteRepository("/tmp")
		assert.ErrorIs(t, err, vErr)
	})

	t.Run("fails without remotes", func(t *testing.T) {
		openRepo = func(string) (gitRepository, error) { return &MockGitRepository{}, nil }

		_, err := GetRemoteRepository("/tmp")
		assert.Equal(t, errcodes.ErrNoRemotes, err)
	})

	t.Run("skips remotes that do not parse", func(t *testing.T) {
		openRepo = func(string) (gitRepository, error) {
			return &MockGitRepository{RemoteURLsValue: []string{
				"/srv/git/core",
				"https://github.com/acme/core.git",
			}}, nil
		}

		r, err := GetRemoteRepository("/tmp")
		assert.NoError(t, err)
		assert.Equal(t, "acme", r.Owner)
		assert.Equal(t, "core", r.Name)
	})

	t.Run("fails when no remote parses", func(t *testing.T) {
		openRepo = func(string) (gitRepository, error) {
			return &MockGitRepository{RemoteURLsValue: []string{"/srv/git/core"}}, nil
		}

		_, err := GetRemoteRepository("/tmp")
		assert.ErrorIs(t, err, errcodes.ErrUnableToParseRemoteURI)
	})
}

func TestGetLocalRemoteRepository(t *testing.T) {
	oldOpenRepo, oldGetWorkingDir := openRepo, getWorkingDir
	defer func() { openRepo, getWorkingDir = oldOpenRepo, oldGetWorkingDir }()

	t.Run("fails when the working dir is unknown", func(t *testing.T) {
		vErr := errors.New("wd err")
		getWorkingDir = func(fs.Filesystem) (string, error) { return "", vErr }

		_, err := GetLocalRemoteRepository()
		assert.ErrorIs(t, err, vErr)
	})

	t.Run("opens the working dir", func(t *testing.T) {
		opened := ""
		getWorkingDir = func(fs.Filesystem) (string, error) { return "/work/core", nil }
		openRepo = func(p string) (gitRepository, error) {
			opened = p
			return &MockGitRepository{RemoteURLsValue: []string{"git@github.com:acme/core.git"}}, nil
		}

		r, err := GetLocalRemoteRepository()
		assert.NoError(t, err)
		assert.Equal(t, "/work/core", opened)
		assert.Equal(t, &RemoteRepository{"github.com", "acme", "core"}, r)
	})
}
