package domain

import "errors"

var (
	// ErrUnauthorized marks a 401: the token is missing, expired, or revoked.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden marks a 403: the account is valid but lacks the role.
	ErrForbidden = errors.New("access forbidden")
	// ErrNotFound marks a 404 on any resource.
	ErrNotFound = errors.New("not found")
)

// Detailer is implemented by transport errors that carry a server-supplied
// message suitable for display.
type Detailer interface {
	ServerDetail() string
}

// ErrorDetail returns the server-supplied detail carried by err, or ""
// when there is none.
func ErrorDetail(err error) string {
	var d Detailer
	if errors.As(err, &d) {
		return d.ServerDetail()
	}
	return ""
}
