package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-validation-gate/internal/config"
	"github.com/MKhiriev/go-validation-gate/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pingRouter() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name    string
		router  http.Handler
		cfg     config.Server
		wantErr error
	}{
		{name: "ok", router: pingRouter(), cfg: config.Defaults().Server},
		{name: "no router", router: nil, cfg: config.Defaults().Server, wantErr: errNoRouter},
		{name: "no address", router: pingRouter(), cfg: config.Server{}, wantErr: errNoAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.router, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				assert.Nil(t, s)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}

func TestNewHTTPServer_AppliesTimeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:9999", RequestTimeout: 3 * time.Second, ShutdownTimeout: time.Second}

	h := newHTTPServer(pingRouter(), cfg, logger.Nop())

	assert.Equal(t, "localhost:9999", h.server.Addr)
	assert.Equal(t, 3*time.Second, h.server.ReadTimeout)
	assert.Equal(t, 3*time.Second, h.server.WriteTimeout)
	assert.Equal(t, 3*time.Second, h.server.ReadHeaderTimeout)
	assert.Equal(t, time.Second, h.shutdownTimeout)
}

func TestServer_ServesUntilCancelled(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s, err := NewServer(pingRouter(), config.Defaults().Server, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.(*server).runOn(ctx, ln)
	}()

	resp, err := resty.New().R().Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "pong", resp.String())

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	cfg := config.Defaults().Server
	cfg.HTTPAddress = ln.Addr().String()

	s, err := NewServer(pingRouter(), cfg, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, s.Run(context.Background()))
}
