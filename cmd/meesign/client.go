package main

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"gopkg.in/yaml.v3"

	pb "github.com/SPXcz/meesign-server/internal/pb"
)

// credentialStore holds the CLI's enrollment state: the coordinator address,
// the CA certificate to trust, and the device keypair issued at registration.
type credentialStore struct {
	dir string
}

type clientSettings struct {
	Server string `yaml:"server"`
}

func newCredentialStore() credentialStore {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return credentialStore{dir: filepath.Join(".config", "meesign")}
		}
		dir = filepath.Join(home, ".config")
	}
	return credentialStore{dir: filepath.Join(dir, "meesign")}
}

func (c credentialStore) settingsPath() string { return filepath.Join(c.dir, "config.yaml") }
func (c credentialStore) keyPath() string      { return filepath.Join(c.dir, "device-key.pem") }
func (c credentialStore) certPath() string     { return filepath.Join(c.dir, "device-cert.pem") }
func (c credentialStore) caPath() string       { return filepath.Join(c.dir, "ca-cert.pem") }

func (c credentialStore) loadSettings() (clientSettings, error) {
	var s clientSettings
	data, err := os.ReadFile(c.settingsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read CLI config: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse CLI config: %w", err)
	}
	return s, nil
}

func (c credentialStore) saveSettings(s clientSettings) error {
	if err := os.MkdirAll(c.dir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal CLI config: %w", err)
	}
	if err := os.WriteFile(c.settingsPath(), data, 0o644); err != nil {
		return fmt.Errorf("write CLI config: %w", err)
	}
	return nil
}

// resolveServer picks the coordinator address: flag first, then the stored
// setting.
func (c credentialStore) resolveServer(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	s, err := c.loadSettings()
	if err != nil {
		return "", err
	}
	if s.Server == "" {
		return "", fmt.Errorf("no coordinator configured — pass --server or register first")
	}
	return s.Server, nil
}

func (c credentialStore) caPool() (*x509.CertPool, error) {
	caPEM, err := os.ReadFile(c.caPath())
	if err != nil {
		return nil, fmt.Errorf("read CA certificate (register first): %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caPEM) {
		return nil, fmt.Errorf("parse CA certificate %s", c.caPath())
	}
	return pool, nil
}

// dial connects with the enrolled device certificate.
func (c credentialStore) dial(serverFlag string) (*grpc.ClientConn, pb.MPCClient, error) {
	server, err := c.resolveServer(serverFlag)
	if err != nil {
		return nil, nil, err
	}
	pool, err := c.caPool()
	if err != nil {
		return nil, nil, err
	}
	cert, err := tls.LoadX509KeyPair(c.certPath(), c.keyPath())
	if err != nil {
		return nil, nil, fmt.Errorf("load device credentials (register first): %w", err)
	}

	conn, err := grpc.NewClient(server, grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{
		MinVersion:   tls.VersionTLS13,
		RootCAs:      pool,
		Certificates: []tls.Certificate{cert},
	})))
	if err != nil {
		return nil, nil, fmt.Errorf("connect %s: %w", server, err)
	}
	return conn, pb.NewMPCClient(conn), nil
}

// dialAnonymous connects without a client certificate, trusting the CA
// certificate at caCertPath. Used for enrollment.
func dialAnonymous(server, caCertPath string) (*grpc.ClientConn, pb.MPCClient, error) {
	caPEM, err := os.ReadFile(caCertPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read CA certificate: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caPEM) {
		return nil, nil, fmt.Errorf("parse CA certificate %s", caCertPath)
	}

	conn, err := grpc.NewClient(server, grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{
		MinVersion: tls.VersionTLS13,
		RootCAs:    pool,
	})))
	if err != nil {
		return nil, nil, fmt.Errorf("connect %s: %w", server, err)
	}
	return conn, pb.NewMPCClient(conn), nil
}
