// Package handler provides type-safe HTTP request handling for server-driven
// web pages.
//
// The package centers around generic handler functions that bind HTTP
// requests to Go structs and return typed responses, with first-class support
// for partial page updates over Server-Sent Events via Datastar. It is
// designed to reduce boilerplate while keeping request parsing, rendering,
// and error handling explicit.
//
// # Core Concepts
//
//	type SelectTabRequest struct {
//		ID string `query:"id"`
//	}
//
//	func selectTab(ctx handler.Context, req SelectTabRequest) handler.Response {
//		group, err := tabs.Select(req.ID)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.Templ(views.TabGroup(group))
//	}
//
//	r.Post("/tabs/select", handler.Wrap(selectTab,
//		handler.WithBinders(binder.Query()),
//	))
//
// # Response Types
//
// Responses adapt to the request: Datastar requests (detected by IsDataStar)
// receive SSE element patches, while direct navigation receives plain HTML.
//
//	handler.Templ(component)             // render one component
//	handler.TemplPartial(partial, full)  // patch for Datastar, page otherwise
//	handler.TemplMulti(patches...)       // several patches in one response
//	handler.Signals(v)                   // update client signal state
//	handler.Script(js)                   // run a one-shot script on the page
//	handler.Redirect("/done")            // SSE redirect or 303
//	handler.Empty()                      // 204 without a body
//
// # Error Handling
//
// Binding or rendering failures flow into an ErrorHandler. NewErrorHandler
// classifies errors (HTTPError catalog, validation errors, everything else),
// logs them with request context, and renders a toast patch for Datastar
// requests or an error page for direct navigation.
//
// # Context
//
// The Context interface extends context.Context with HTTP accessors:
//
//	ctx.Request()         // *http.Request
//	ctx.ResponseWriter()  // http.ResponseWriter
//	ctx.SSE()             // SSE generator when the request is Datastar
package handler
