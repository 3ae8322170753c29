package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-firebase-client/internal/config"
	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/transport"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer binds cfg.Address and prepares an HTTPS server for handler. The
// certificate pin is logged so clients can be configured with it.
func NewServer(handler http.Handler, cfg *config.EmulatorConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if handler == nil {
		return nil, errNoHandler
	}

	host, _, err := net.SplitHostPort(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid listen address %q: %w", cfg.Address, err)
	}

	cert, err := loadCertificate(cfg.CertFile, cfg.KeyFile, host)
	if err != nil {
		return nil, fmt.Errorf("error loading TLS certificate: %w", err)
	}

	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.Address, err)
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
		// the raw engine speaks HTTP/1.1 only
		NextProtos: []string{"http/1.1"},
	}

	logger.Info().
		Str("address", listener.Addr().String()).
		Str("pin", transport.FormatPin(cert.Leaf)).
		Bool("self_signed", cfg.CertFile == "").
		Msg("TLS certificate ready")

	return &server{
		httpServer: newHTTPServer(handler, listener, tlsConfig, logger),
		logger:     logger,
	}, nil
}

func (s *server) Addr() string {
	return s.httpServer.listener.Addr().String()
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is done, then shuts the server down.
func (s *server) run(ctx context.Context) {
	idleConnectionsClosed := make(chan struct{})

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.Addr()).Msg("Launching HTTPS server")
	s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}
