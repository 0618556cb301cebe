package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader marks a request expecting an event stream.
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam carries Datastar signals on GET requests.
	DataStarQueryParam = "datastar"
)

// Patch mode aliases, so call sites read handler.PatchInner instead of the
// full datastar constant.
const (
	PatchOuter   = datastar.ElementPatchModeOuter   // morph whole element (default)
	PatchInner   = datastar.ElementPatchModeInner   // swap inner HTML
	PatchReplace = datastar.ElementPatchModeReplace // swap whole element
	PatchRemove  = datastar.ElementPatchModeRemove  // drop element
	PatchAppend  = datastar.ElementPatchModeAppend  // add as last child
	PatchPrepend = datastar.ElementPatchModePrepend // add as first child
	PatchBefore  = datastar.ElementPatchModeBefore  // insert before element
	PatchAfter   = datastar.ElementPatchModeAfter   // insert after element
)

// IsDataStar checks if the request is a Datastar request: it accepts
// Server-Sent Events, carries signals in the datastar query parameter, or
// posts a Datastar content type.
func IsDataStar(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if strings.Contains(accept, DataStarAcceptHeader) {
		return true
	}

	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}

	contentType := r.Header.Get("Content-Type")
	return strings.Contains(contentType, "application/x-datastar")
}

// NewSSE opens the event stream a Datastar response is written to.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}
