package testutil

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
)

// ErrListenFailure is returned by servers built with NewFailingHTTPServer.
var ErrListenFailure = errors.New("listen failure")

// StubHTTPServer satisfies the server package's httpServer contract. It
// returns ListenErr and ShutdownErr and counts calls, which may arrive from
// the goroutine the server launches.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error

	listens   atomic.Int32
	shutdowns atomic.Int32
}

// NewFailingHTTPServer returns a stub whose ListenAndServe fails immediately.
func NewFailingHTTPServer() *StubHTTPServer {
	return &StubHTTPServer{AddrVal: ":0", ListenErr: ErrListenFailure}
}

// NewClosedHTTPServer returns a stub that reports a normal close.
func NewClosedHTTPServer() *StubHTTPServer {
	return &StubHTTPServer{AddrVal: ":0", ListenErr: http.ErrServerClosed}
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.listens.Add(1)
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(context.Context) error {
	s.shutdowns.Add(1)
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string { return s.AddrVal }

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NotFoundHandler()
	}
	return s.HandlerVal
}

func (s *StubHTTPServer) ListenCalls() int   { return int(s.listens.Load()) }
func (s *StubHTTPServer) ShutdownCalls() int { return int(s.shutdowns.Load()) }

// BlockingHTTPServer is a StubHTTPServer whose Shutdown waits for Unblock or
// the context deadline.
type BlockingHTTPServer struct {
	StubHTTPServer
	Unblock chan struct{}
}

func (b *BlockingHTTPServer) Shutdown(ctx context.Context) error {
	b.shutdowns.Add(1)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.Unblock:
		return nil
	}
}
