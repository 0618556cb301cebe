package handler

import (
	"encoding/json"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type signalsResponse struct {
	signals any
}

// Render patches client signal state for Datastar requests and falls back to
// a plain JSON body for direct requests.
func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	data, err := json.Marshal(s.signals)
	if err != nil {
		return err
	}

	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchSignals(data)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, err = w.Write(data)
	return err
}

// Signals creates a response that updates client signal state. The value is
// marshaled to JSON; use a map or a struct with json tags matching the signal
// names on the page.
//
//	return handler.Signals(map[string]any{"count": state.Count})
func Signals(signals any) Response {
	return signalsResponse{signals: signals}
}
