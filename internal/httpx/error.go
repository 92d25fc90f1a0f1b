package httpx

// ErrorKind classifies transport failures once, at the boundary. Everything
// above this package matches on the kind, never on status codes.
type ErrorKind int

const (
	KindBadRequest ErrorKind = iota
	KindUnauthorized
	KindNotFound
	KindNetwork
	KindUnexpected
)

// Error is the API error taxonomy.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindBadRequest:
		return "bad request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindNetwork:
		return "network error"
	}
	if e.Message != "" {
		return e.Message
	}
	return "unexpected error"
}

func badStatus(status int) *Error {
	switch status {
	case 400:
		return &Error{Kind: KindBadRequest}
	case 401:
		return &Error{Kind: KindUnauthorized}
	case 404:
		return &Error{Kind: KindNotFound}
	}
	return &Error{Kind: KindUnexpected, Message: httpStatusMessage(status)}
}
