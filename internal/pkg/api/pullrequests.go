package api

import (
	"context"
	"prtrack/internal/domain/pullrequest"
	"prtrack/internal/errcodes"

	"github.com/tidwall/gjson"
)

func (s *PullRequestService) List(ctx context.Context, o *pullrequest.ListOptions) ([]*pullrequest.Entity, error) {
	if o.Owner == "" {
		return nil, errcodes.ErrMissingOwner
	}
	if o.Name == "" {
		return nil, errcodes.ErrMissingName
	}

	r, err := s.rc.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"owner": o.Owner,
			"name":  o.Name,
		}).
		SetError(&apiError{}).
		Get("/pull_requests/{owner}/{name}")
	if err := checkResponse(r, err); err != nil {
		return nil, err
	}

	prs := make([]*pullrequest.Entity, 0)
	for _, value := range arrayOf(gjson.GetBytes(r.Body(), "pull_requests")) {
		prs = append(prs, parsePullRequest(value))
	}

	return prs, nil
}
