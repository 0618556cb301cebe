package handler

import "net/http"

type errorResponse struct {
	err error
}

func (e errorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return e.err
}

// Error returns a Response that fails with err, routing it into the wrapper's
// configured error handler. Handlers use it to surface domain errors such as
// an unknown resource:
//
//	if !found {
//		return handler.Error(handler.ErrNotFound)
//	}
func Error(err error) Response {
	return errorResponse{err: err}
}
