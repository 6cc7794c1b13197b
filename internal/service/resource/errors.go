package resource

import "errors"

var (
	ErrNotFound       = errors.New("resource not found")
	ErrNotShared      = errors.New("resource is not shared with this client")
	ErrNoFile         = errors.New("resource has no attached file")
	ErrAlreadyShared  = errors.New("resource is already shared with this client")
	ErrInvalidKind    = errors.New("invalid resource kind")
	ErrMissingContent = errors.New("resource needs either a file or an external URL")
)
