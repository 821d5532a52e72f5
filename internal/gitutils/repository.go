package gitutils

import (
	"github.com/go-git/go-git/v5"
)

const originRemote = "origin"

type goGitRepository interface {
	Remotes() ([]*git.Remote, error)
}

type gitRepository interface {
	GetRemoteURLs() ([]string, error)
}

type repository struct {
	r goGitRepository
}

// openRepo walks up from path until it finds a .git directory.
var openRepo = func(path string) (gitRepository, error) {
	r, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, err
	}

	return &repository{r: r}, nil
}

// GetRemoteURLs lists every remote URL with the origin remote's URLs first.
func (r *repository) GetRemoteURLs() ([]string, error) {
	remotes, err := r.r.Remotes()
	if err != nil {
		return nil, err
	}

	var origin, rest []string
	for _, re := range remotes {
		cfg := re.Config()
		if cfg.Name == originRemote {
			origin = append(origin, cfg.URLs...)
			continue
		}
		rest = append(rest, cfg.URLs...)
	}

	return append(origin, rest...), nil
}
