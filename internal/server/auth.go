package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	pb "github.com/SPXcz/meesign-server/internal/pb"
)

type deviceKey struct{}

// deviceFromContext returns the authenticated device id, or nil for
// unauthenticated calls on exempt methods.
func deviceFromContext(ctx context.Context) []byte {
	id, _ := ctx.Value(deviceKey{}).([]byte)
	return id
}

// openMethods may be called without a client certificate: enrollment happens
// before a certificate exists, and diagnostics must work even for devices the
// coordinator no longer trusts.
var openMethods = map[string]bool{
	pb.MPC_Register_FullMethodName: true,
	pb.MPC_Log_FullMethodName:      true,
}

// Authenticator resolves a presented client certificate to a device id.
type Authenticator interface {
	Authenticate(cert []byte) ([]byte, error)
}

// UnaryAuth authenticates the caller's TLS client certificate and stores the
// resolved device id on the context. Methods outside openMethods fail with
// Unauthenticated when no valid certificate is presented.
func UnaryAuth(auth Authenticator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx, err := authenticate(ctx, auth, info.FullMethod)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// StreamAuth is UnaryAuth for streaming methods.
func StreamAuth(auth Authenticator) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx, err := authenticate(ss.Context(), auth, info.FullMethod)
		if err != nil {
			return err
		}
		return handler(srv, &authenticatedStream{ServerStream: ss, ctx: ctx})
	}
}

func authenticate(ctx context.Context, auth Authenticator, method string) (context.Context, error) {
	cert := peerCertificate(ctx)
	if cert == nil {
		if openMethods[method] {
			return ctx, nil
		}
		return nil, status.Error(codes.Unauthenticated, "client certificate required")
	}

	id, err := auth.Authenticate(cert)
	if err != nil {
		if openMethods[method] {
			// A stale or foreign certificate still gets the open surface.
			return ctx, nil
		}
		return nil, toGRPCError(err)
	}
	return context.WithValue(ctx, deviceKey{}, id), nil
}

// peerCertificate extracts the caller's leaf certificate in DER form, or nil
// when the connection carries no client certificate.
func peerCertificate(ctx context.Context) []byte {
	p, ok := peer.FromContext(ctx)
	if !ok || p.AuthInfo == nil {
		return nil
	}
	tlsInfo, ok := p.AuthInfo.(credentials.TLSInfo)
	if !ok || len(tlsInfo.State.PeerCertificates) == 0 {
		return nil
	}
	return tlsInfo.State.PeerCertificates[0].Raw
}

type authenticatedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authenticatedStream) Context() context.Context { return s.ctx }
