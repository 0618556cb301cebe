package httpserver_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landingkit/pkg/httpserver"
)

// reserveAddr grabs a free loopback port for the test server.
func reserveAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "reserve port")
	addr := l.Addr().String()
	require.NoError(t, l.Close(), "release port")
	return addr
}

// waitListening blocks until the address accepts connections.
func waitListening(t *testing.T, addr string) {
	t.Helper()
	for range 100 {
		conn, err := net.Dial("tcp", addr)
		if err == nil {
			_ = conn.Close()
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("server at %s never came up", addr)
}

// landingHandler is a stand-in for the real page router.
func landingHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, "<h1>Interactive Page Demo</h1>")
	})
}

// await expects Run to return nil shortly.
func await(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err, "run returned error")
	case <-time.After(time.Second):
		require.Fail(t, "run did not return")
	}
}

func TestServePage(t *testing.T) {
	t.Parallel()
	addr := reserveAddr(t)
	srv := httpserver.New(httpserver.WithAddr(addr), httpserver.WithShutdownTimeout(100*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, landingHandler()) }()
	waitListening(t, addr)

	resp, err := http.Get("http://" + addr + "/")
	require.NoError(t, err, "get page")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close(), "close body")
	require.NoError(t, err, "read body")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Interactive Page Demo")

	cancel()
	await(t, done)
}

func TestShutdownUnblocksRun(t *testing.T) {
	t.Parallel()
	addr := reserveAddr(t)
	ready := make(chan struct{})
	srv := httpserver.New(
		httpserver.WithAddr(addr),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		httpserver.WithStartHook(func(*slog.Logger) { close(ready) }),
	)

	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), landingHandler()) }()
	<-ready

	require.NoError(t, srv.Shutdown(context.Background()), "shutdown")
	await(t, done)
}

func TestShutdownIdempotent(t *testing.T) {
	t.Parallel()
	addr := reserveAddr(t)
	ready := make(chan struct{})
	srv := httpserver.New(
		httpserver.WithAddr(addr),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
		httpserver.WithStartHook(func(*slog.Logger) { close(ready) }),
	)
	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), nil) }()
	<-ready

	require.NoError(t, srv.Shutdown(context.Background()), "first shutdown")
	require.NoError(t, srv.Shutdown(context.Background()), "repeat shutdown")
	await(t, done)
}

func TestRunTwiceRejected(t *testing.T) {
	t.Parallel()
	addr := reserveAddr(t)
	ready := make(chan struct{})
	srv := httpserver.New(
		httpserver.WithAddr(addr),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
		httpserver.WithStartHook(func(*slog.Logger) { close(ready) }),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, nil) }()
	<-ready

	err := srv.Run(context.Background(), nil)
	require.Error(t, err, "second run must be rejected")
	assert.ErrorIs(t, err, httpserver.ErrStart)

	cancel()
	await(t, done)
}

func TestListenFailure(t *testing.T) {
	t.Parallel()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "occupy port")
	defer func() { _ = l.Close() }()

	srv := httpserver.New(httpserver.WithAddr(l.Addr().String()))
	err = srv.Run(context.Background(), landingHandler())
	require.Error(t, err, "bind to a busy port must fail")
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestLifecycleHooks(t *testing.T) {
	t.Parallel()
	addr := reserveAddr(t)
	var started, stopped atomic.Bool
	ready := make(chan struct{})
	srv := httpserver.New(
		httpserver.WithAddr(addr),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
		httpserver.WithStartHook(func(*slog.Logger) {
			started.Store(true)
			close(ready)
		}),
		httpserver.WithStopHook(func(*slog.Logger) { stopped.Store(true) }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, nil) }()
	<-ready
	assert.True(t, started.Load(), "start hook must fire before serving")
	assert.False(t, stopped.Load(), "stop hook must not fire while serving")

	cancel()
	await(t, done)
	assert.True(t, stopped.Load(), "stop hook must fire on shutdown")
}

func TestTermSignal(t *testing.T) {
	t.Parallel()
	addr := reserveAddr(t)
	srv := httpserver.New(
		httpserver.WithAddr(addr),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
	)
	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), landingHandler()) }()
	waitListening(t, addr)

	proc, err := os.FindProcess(os.Getpid())
	require.NoError(t, err, "find own process")
	require.NoError(t, proc.Signal(syscall.SIGTERM), "send TERM")
	await(t, done)
}

func TestPresetServerValuesWin(t *testing.T) {
	t.Parallel()
	addr := reserveAddr(t)
	preset := &http.Server{ReadTimeout: 7 * time.Second}
	ready := make(chan struct{})
	srv := httpserver.New(
		httpserver.WithServer(preset),
		httpserver.WithAddr(addr),
		httpserver.WithReadTimeout(time.Second),
		httpserver.WithStartHook(func(*slog.Logger) { close(ready) }),
	)
	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), landingHandler()) }()
	<-ready

	assert.Equal(t, 7*time.Second, preset.ReadTimeout, "preset read timeout overridden")
	assert.Equal(t, addr, preset.Addr, "empty addr must be filled in")
	assert.NotNil(t, preset.Handler, "handler must be attached")

	require.NoError(t, srv.Shutdown(context.Background()), "shutdown")
	await(t, done)
}

func TestOptionsReachServer(t *testing.T) {
	t.Parallel()
	addr := reserveAddr(t)
	configured := slog.New(slog.NewTextHandler(io.Discard, nil))
	hs := &http.Server{}
	hookLogger := make(chan *slog.Logger, 1)
	srv := httpserver.New(
		httpserver.WithServer(hs),
		httpserver.WithAddr(addr),
		httpserver.WithReadTimeout(2*time.Second),
		httpserver.WithWriteTimeout(4*time.Second),
		httpserver.WithIdleTimeout(8*time.Second),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
		httpserver.WithLogger(configured),
		httpserver.WithStartHook(func(l *slog.Logger) { hookLogger <- l }),
	)
	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), nil) }()

	assert.Equal(t, configured, <-hookLogger, "hooks must receive the configured logger")
	assert.Equal(t, addr, hs.Addr)
	assert.Equal(t, 2*time.Second, hs.ReadTimeout)
	assert.Equal(t, 4*time.Second, hs.WriteTimeout)
	assert.Equal(t, 8*time.Second, hs.IdleTimeout)

	require.NoError(t, srv.Shutdown(context.Background()), "shutdown")
	await(t, done)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	addr := reserveAddr(t)
	hs := &http.Server{}
	ready := make(chan struct{})
	srv := httpserver.NewFromConfig(httpserver.Config{
		Addr:            addr,
		ReadTimeout:     2 * time.Second,
		WriteTimeout:    4 * time.Second,
		IdleTimeout:     8 * time.Second,
		ShutdownTimeout: 50 * time.Millisecond,
	},
		httpserver.WithServer(hs),
		httpserver.WithStartHook(func(*slog.Logger) { close(ready) }),
	)
	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), nil) }()
	<-ready

	assert.Equal(t, addr, hs.Addr)
	assert.Equal(t, 2*time.Second, hs.ReadTimeout)
	assert.Equal(t, 4*time.Second, hs.WriteTimeout)
	assert.Equal(t, 8*time.Second, hs.IdleTimeout)

	require.NoError(t, srv.Shutdown(context.Background()), "shutdown")
	await(t, done)
}

func TestOptionGuards(t *testing.T) {
	t.Parallel()
	bad := map[string]func(){
		"empty addr":        func() { httpserver.WithAddr("") },
		"negative read":     func() { httpserver.WithReadTimeout(-time.Second) },
		"negative write":    func() { httpserver.WithWriteTimeout(-time.Second) },
		"negative idle":     func() { httpserver.WithIdleTimeout(-time.Second) },
		"negative shutdown": func() { httpserver.WithShutdownTimeout(-time.Second) },
		"nil server":        func() { httpserver.WithServer(nil) },
		"nil start hook":    func() { httpserver.WithStartHook(nil) },
		"nil stop hook":     func() { httpserver.WithStopHook(nil) },
	}
	for name, fn := range bad {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, fn)
		})
	}

	t.Run("nil logger tolerated", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() { httpserver.WithLogger(nil) })
	})
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()
	log := slog.New(slog.DiscardHandler)

	probe := func(h http.HandlerFunc) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		return rr
	}

	t.Run("alive without readiness checks", func(t *testing.T) {
		t.Parallel()
		rr := probe(httpserver.HealthCheckHandler(context.Background(), log))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "ALIVE", rr.Body.String())
	})

	t.Run("ready when every check passes", func(t *testing.T) {
		t.Parallel()
		rr := probe(httpserver.HealthCheckHandler(context.Background(), log,
			func(context.Context) error { return nil },
			func(context.Context) error { return nil },
		))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "READY", rr.Body.String())
	})

	t.Run("not ready when a dependency fails", func(t *testing.T) {
		t.Parallel()
		rr := probe(httpserver.HealthCheckHandler(context.Background(), log,
			func(context.Context) error { return nil },
			func(context.Context) error { return errors.New("content store unavailable") },
		))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "NOT_READY", rr.Body.String())
	})
}
