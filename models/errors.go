package models

// Error taxonomy for the portal. Handlers map these to HTTP status
// codes through helper.GetStatusCode; raw upstream errors are logged
// server-side and replaced by one of these before leaving a service.

// ErrorValidation - missing or empty required input.
type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string {
	return e.Message
}

// ErrorUnauthorized - missing or invalid session token.
type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

// ErrorForbidden - valid identity, insufficient rol.
type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string {
	return e.Message
}

// ErrorNotFound ...
type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

// ErrorInternalServer - upstream/backend failure, generic message only.
type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string {
	return e.Message
}
