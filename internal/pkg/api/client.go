package api

import (
	"net/http"
	"prtrack/internal/errcodes"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

type ClientOptions struct {
	BaseURL string
	Debug   bool
	Logger  resty.Logger
}

type service struct {
	rc *resty.Client
}

type RepoService service
type PullRequestService service

// Client talks to the repository tracker API server. Requests are
// unauthenticated, never retried and carry no timeout of their own.
type Client struct {
	Repos        *RepoService
	PullRequests *PullRequestService
}

func New(o *ClientOptions) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(o.BaseURL), "/")
	if baseURL == "" {
		return nil, errcodes.ErrMissingAPIURL
	}

	logger := o.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	rc := resty.New().
		SetHostURL(baseURL).
		SetHeader("Accept", "application/json").
		SetLogger(logger).
		SetDebug(o.Debug)

	return &Client{
		Repos:        &RepoService{rc: rc},
		PullRequests: &PullRequestService{rc: rc},
	}, nil
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// checkResponse maps transport failures and non-success statuses onto
// errcodes.ErrNetwork, and input rejections onto errcodes.ErrValidation.
func checkResponse(r *resty.Response, err error) error {
	if err != nil {
		return errors.Wrap(errcodes.ErrNetwork, err.Error())
	}
	if r.IsSuccess() {
		return nil
	}

	msg := r.Status()
	if e, ok := r.Error().(*apiError); ok && e.Message != "" {
		msg = e.Message
	} else if m := gjson.GetBytes(r.Body(), "message"); m.Exists() && m.String() != "" {
		msg = m.String()
	}

	switch r.StatusCode() {
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return errors.Wrap(errcodes.ErrValidation, msg)
	}

	return errors.Wrap(errcodes.ErrNetwork, msg)
}
