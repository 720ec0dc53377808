package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/e-library/library/config"
)

func TestNewServer_Timeouts(t *testing.T) {
	t.Parallel()
	s := NewServer(config.HTTPServer{Host: "127.0.0.1", Port: "0"}, http.NotFoundHandler())
	require.Equal(t, "127.0.0.1:0", s.srv.Addr)
	require.Equal(t, defaultReadTimeout, s.srv.ReadTimeout)
	require.Equal(t, defaultWriteTimeout, s.srv.WriteTimeout)

	s = NewServer(config.HTTPServer{ReadTimeout: time.Second, WriteTimeout: 2 * time.Second}, http.NotFoundHandler())
	require.Equal(t, time.Second, s.srv.ReadTimeout)
	require.Equal(t, 2*time.Second, s.srv.WriteTimeout)
}

func TestServer_RunStop(t *testing.T) {
	t.Parallel()
	s := NewServer(config.HTTPServer{Host: "127.0.0.1", Port: "0"}, http.NotFoundHandler())
	done := make(chan error, 1)
	go func() { done <- s.Run() }()

	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	require.NoError(t, <-done)
}
