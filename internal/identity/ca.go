package identity

import (
	"crypto"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"time"
)

// CA is the certificate authority collaborator. The registry delegates CSR
// signing to it and validates presented certificates against it.
type CA interface {
	// SignCSR validates a PEM or DER encoded certificate request and issues
	// a device certificate (DER).
	SignCSR(csr []byte, name string) ([]byte, error)

	// Verify checks that a DER certificate was issued by this CA and is
	// within its validity window.
	Verify(cert []byte) error

	// Certificate returns the CA certificate (DER).
	Certificate() []byte
}

const deviceCertValidity = 365 * 24 * time.Hour

// LocalCA issues device certificates with a CA key held on local disk.
type LocalCA struct {
	cert *x509.Certificate
	key  crypto.Signer
	pool *x509.CertPool
}

// LoadOrCreateCA reads ca-cert.pem and ca-key.pem from dir, generating a
// fresh self-signed ed25519 CA when neither exists.
func LoadOrCreateCA(dir string) (*LocalCA, error) {
	certPath := filepath.Join(dir, "ca-cert.pem")
	keyPath := filepath.Join(dir, "ca-key.pem")

	certPEM, certErr := os.ReadFile(certPath)
	keyPEM, keyErr := os.ReadFile(keyPath)
	if errors.Is(certErr, os.ErrNotExist) && errors.Is(keyErr, os.ErrNotExist) {
		return createCA(certPath, keyPath)
	}
	if certErr != nil {
		return nil, fmt.Errorf("read CA certificate: %w", certErr)
	}
	if keyErr != nil {
		return nil, fmt.Errorf("read CA key: %w", keyErr)
	}

	certBlock, _ := pem.Decode(certPEM)
	if certBlock == nil {
		return nil, fmt.Errorf("parse %s: no PEM block", certPath)
	}
	cert, err := x509.ParseCertificate(certBlock.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse CA certificate: %w", err)
	}

	keyBlock, _ := pem.Decode(keyPEM)
	if keyBlock == nil {
		return nil, fmt.Errorf("parse %s: no PEM block", keyPath)
	}
	parsedKey, err := x509.ParsePKCS8PrivateKey(keyBlock.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse CA key: %w", err)
	}
	signer, ok := parsedKey.(crypto.Signer)
	if !ok {
		return nil, fmt.Errorf("CA key type %T cannot sign", parsedKey)
	}

	return newLocalCA(cert, signer), nil
}

func createCA(certPath, keyPath string) (*LocalCA, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate CA key: %w", err)
	}

	serial, err := randomSerial()
	if err != nil {
		return nil, err
	}
	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{CommonName: "MeeSign Coordinator CA"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(10 * 365 * 24 * time.Hour),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, pub, priv)
	if err != nil {
		return nil, fmt.Errorf("create CA certificate: %w", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("parse created CA certificate: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(certPath), 0o755); err != nil {
		return nil, fmt.Errorf("create CA directory: %w", err)
	}
	keyDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("marshal CA key: %w", err)
	}
	certOut := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyOut := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER})
	if err := os.WriteFile(certPath, certOut, 0o644); err != nil {
		return nil, fmt.Errorf("write CA certificate: %w", err)
	}
	if err := os.WriteFile(keyPath, keyOut, 0o600); err != nil {
		return nil, fmt.Errorf("write CA key: %w", err)
	}

	return newLocalCA(cert, priv), nil
}

func newLocalCA(cert *x509.Certificate, key crypto.Signer) *LocalCA {
	pool := x509.NewCertPool()
	pool.AddCert(cert)
	return &LocalCA{cert: cert, key: key, pool: pool}
}

func (ca *LocalCA) SignCSR(csr []byte, name string) ([]byte, error) {
	der := csr
	if block, _ := pem.Decode(csr); block != nil {
		der = block.Bytes
	}
	req, err := x509.ParseCertificateRequest(der)
	if err != nil {
		return nil, fmt.Errorf("parse CSR: %w", err)
	}
	if err := req.CheckSignature(); err != nil {
		return nil, fmt.Errorf("CSR signature: %w", err)
	}

	serial, err := randomSerial()
	if err != nil {
		return nil, err
	}
	template := &x509.Certificate{
		SerialNumber: serial,
		Subject:      pkix.Name{CommonName: name},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(deviceCertValidity),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
	}
	cert, err := x509.CreateCertificate(rand.Reader, template, ca.cert, req.PublicKey, ca.key)
	if err != nil {
		return nil, fmt.Errorf("issue device certificate: %w", err)
	}
	return cert, nil
}

func (ca *LocalCA) Verify(cert []byte) error {
	parsed, err := x509.ParseCertificate(cert)
	if err != nil {
		return fmt.Errorf("parse certificate: %w", err)
	}
	_, err = parsed.Verify(x509.VerifyOptions{
		Roots:     ca.pool,
		KeyUsages: []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
	})
	if err != nil {
		return fmt.Errorf("verify certificate: %w", err)
	}
	return nil
}

func (ca *LocalCA) Certificate() []byte {
	return ca.cert.Raw
}

// Pool returns the trust pool holding the CA certificate, for mTLS listener
// configuration.
func (ca *LocalCA) Pool() *x509.CertPool {
	return ca.pool
}

func randomSerial() (*big.Int, error) {
	limit := new(big.Int).Lsh(big.NewInt(1), 128)
	serial, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return nil, fmt.Errorf("generate serial: %w", err)
	}
	return serial, nil
}

// Fingerprint derives a device id from a DER certificate: the SHA-256 of its
// SubjectPublicKeyInfo. The id survives certificate renewal as long as the
// device keeps its key pair.
func Fingerprint(certDER []byte) ([]byte, error) {
	cert, err := x509.ParseCertificate(certDER)
	if err != nil {
		return nil, fmt.Errorf("parse certificate: %w", err)
	}
	sum := sha256.Sum256(cert.RawSubjectPublicKeyInfo)
	return sum[:], nil
}
