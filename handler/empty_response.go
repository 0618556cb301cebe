package handler

import "net/http"

type emptyResponse struct {
	status int
}

// Render writes the status code without any body content
func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty creates an empty response with status 204 (No Content), for
// operations whose only effect is server-side state such as persisting a
// preference.
func Empty() Response {
	return emptyResponse{
		status: http.StatusNoContent,
	}
}

// EmptyWithStatus creates an empty response with a custom status code.
func EmptyWithStatus(status int) Response {
	return emptyResponse{
		status: status,
	}
}
