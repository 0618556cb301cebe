package logger

import (
	"log/slog"
	"time"
)

// Group nests attrs under name in the log record.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error reports err as the "error" attribute. A nil err yields an empty Attr,
// which slog drops, so callers never need a nil check.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID reports the request identifier as "request_id", or an empty Attr
// when no identifier is known.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Duration reports an elapsed time as "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component names the subsystem a record belongs to.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names the application event a record describes.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Handler names the handler that produced a record.
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}
