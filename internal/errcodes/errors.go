package errcodes

import "errors"

var (
	ErrNetwork                = errors.New("network error")
	ErrValidation             = errors.New("validation error")
	ErrMissingOwner           = errors.New("repository owner is missing")
	ErrMissingName            = errors.New("repository name is missing")
	ErrMissingID              = errors.New("repository id is missing")
	ErrMissingAPIURL          = errors.New("api url is missing")
	ErrUnableToParseRemoteURI = errors.New("unable to parse remote repository URI")
	ErrNoRemotes              = errors.New("repository has no remotes")
	ErrInvalidConfig          = errors.New("invalid configuration")
	ErrTerminal               = errors.New("terminal UI failed")
)
