package daemon

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"path/filepath"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/SPXcz/meesign-server/config"
	"github.com/SPXcz/meesign-server/internal/identity"
	pb "github.com/SPXcz/meesign-server/internal/pb"
	"github.com/SPXcz/meesign-server/internal/server"
)

// listenAndServe runs the mTLS gRPC listener and blocks until ctx is
// cancelled. Client certificates are optional at the TLS layer; the auth
// interceptors enforce them per method.
func listenAndServe(ctx context.Context, cfg *config.Config, ca *identity.LocalCA, identities *identity.Registry, mpc *server.Server, ready func()) error {
	caDir := filepath.Join(cfg.DataDir, "ca")
	serverCert, err := ca.ServerCertificate(caDir, listenHosts(cfg.Listen))
	if err != nil {
		return err
	}
	tlsCfg := &tls.Config{
		MinVersion:   tls.VersionTLS13,
		Certificates: []tls.Certificate{serverCert},
		ClientCAs:    ca.Pool(),
		ClientAuth:   tls.VerifyClientCertIfGiven,
	}

	grpcSrv := grpc.NewServer(
		grpc.Creds(credentials.NewTLS(tlsCfg)),
		grpc.ChainUnaryInterceptor(server.UnaryAuth(identities)),
		grpc.ChainStreamInterceptor(server.StreamAuth(identities)),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)
	pb.RegisterMPCServer(grpcSrv, mpc)

	ln, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Listen, err)
	}
	slog.Info("listening", "addr", cfg.Listen)
	if ready != nil {
		ready()
	}

	go func() {
		<-ctx.Done()
		grpcSrv.GracefulStop()
	}()
	if err := grpcSrv.Serve(ln); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// listenHosts derives certificate SANs from the configured listen address.
// A wildcard bind gets localhost SANs so local clients can verify.
func listenHosts(listen string) []string {
	host, _, err := net.SplitHostPort(listen)
	if err != nil || host == "" {
		return []string{"localhost", "127.0.0.1", "::1"}
	}
	return []string{host}
}
