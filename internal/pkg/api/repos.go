package api

import (
	"context"
	"prtrack/internal/domain/repository"
	"prtrack/internal/errcodes"

	"github.com/tidwall/gjson"
)

type addRepositoryBody struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

func (s *RepoService) List(ctx context.Context) ([]*repository.Entity, error) {
	r, err := s.rc.R().
		SetContext(ctx).
		SetError(&apiError{}).
		Get("/repos")
	if err := checkResponse(r, err); err != nil {
		return nil, err
	}

	repos := make([]*repository.Entity, 0)
	for _, value := range arrayOf(gjson.GetBytes(r.Body(), "repos")) {
		repos = append(repos, parseRepository(value))
	}

	return repos, nil
}

func (s *RepoService) Add(ctx context.Context, o *repository.AddOptions) (*repository.Entity, error) {
	r, err := s.rc.R().
		SetContext(ctx).
		SetBody(addRepositoryBody{Owner: o.Owner, Name: o.Name}).
		SetError(&apiError{}).
		Post("/repos")
	if err := checkResponse(r, err); err != nil {
		return nil, err
	}

	repo := parseRepository(gjson.ParseBytes(r.Body()))
	// Fall back to the request echo when the server answers with an id only.
	if repo.Owner == "" {
		repo.Owner = o.Owner
	}
	if repo.Name == "" {
		repo.Name = o.Name
	}

	return repo, nil
}

func (s *RepoService) Delete(ctx context.Context, o *repository.DeleteOptions) error {
	if o.ID == "" {
		return errcodes.ErrMissingID
	}

	r, err := s.rc.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"id": string(o.ID)}).
		SetError(&apiError{}).
		Delete("/repos/{id}")

	return checkResponse(r, err)
}

func (s *RepoService) Get(ctx context.Context, o *repository.GetOptions) (*repository.Entity, error) {
	if o.ID == "" {
		return nil, errcodes.ErrMissingID
	}

	r, err := s.rc.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"id": string(o.ID)}).
		SetError(&apiError{}).
		Get("/repos/{id}")
	if err := checkResponse(r, err); err != nil {
		return nil, err
	}

	return parseRepository(gjson.ParseBytes(r.Body())), nil
}
