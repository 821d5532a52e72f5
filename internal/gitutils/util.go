// Package gitutils infers the owner and name of the repository checked out in
// a directory from its git remotes.
package gitutils

import (
	"prtrack/internal/errcodes"
	"prtrack/internal/pkg/fs"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var ErrCannotGetLocalRepository = errors.New("cannot get local repository")

type RemoteRepository struct {
	Host  string
	Owner string
	Name  string
}

var getWorkingDir = func(fs fs.Filesystem) (string, error) {
	return fs.Getwd()
}

var remotePatterns = []*regexp.Regexp{
	// git@github.com:acme/core.git
	regexp.MustCompile(`^[\w.-]+@([^:/]+):(?:\d+/)?([^/]+)/([^/]+?)(?:\.git)?/?$`),
	// ssh://git@github.com/acme/core.git, https://github.com/acme/core
	regexp.MustCompile(`^(?:ssh|git|https?)://(?:[^@/]+@)?([^:/]+)(?::\d+)?/([^/]+)/([^/]+?)(?:\.git)?/?$`),
}

var extractRepositoryTokens = func(uri string) ([]string, error) {
	uri = strings.TrimSpace(uri)
	for _, r := range remotePatterns {
		m := r.FindStringSubmatch(uri)
		if len(m) == 4 {
			return m[1:], nil
		}
	}

	return nil, errors.Wrap(errcodes.ErrUnableToParseRemoteURI, uri)
}

func ParseRemoteURL(uri string) (*RemoteRepository, error) {
	m, err := extractRepositoryTokens(uri)
	if err != nil {
		return nil, err
	}

	return &RemoteRepository{
		Host:  m[0],
		Owner: m[1],
		Name:  m[2],
	}, nil
}

// GetRemoteRepository returns the first remote of the repository at path that
// parses, preferring origin.
func GetRemoteRepository(path string) (*RemoteRepository, error) {
	r, err := openRepo(path)
	if err != nil {
		return nil, errors.Wrap(err, ErrCannotGetLocalRepository.Error())
	}

	urls, err := r.GetRemoteURLs()
	if err != nil {
		return nil, err
	}
	if len(urls) == 0 {
		return nil, errcodes.ErrNoRemotes
	}

	for _, url := range urls {
		repo, err := ParseRemoteURL(url)
		if err == nil {
			return repo, nil
		}
	}

	return nil, errors.Wrap(errcodes.ErrUnableToParseRemoteURI, urls[0])
}

// GetLocalRemoteRepository resolves the repository of the working directory.
func GetLocalRemoteRepository() (*RemoteRepository, error) {
	wd, err := getWorkingDir(fs.OS{})
	if err != nil {
		return nil, errors.Wrap(err, ErrCannotGetLocalRepository.Error())
	}

	return GetRemoteRepository(wd)
}
