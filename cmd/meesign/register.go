package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SPXcz/meesign-server/cmd/meesign/ui"
	pb "github.com/SPXcz/meesign-server/internal/pb"
)

func registerCmd(creds credentialStore, server *string) *cobra.Command {
	var name string
	var caCertPath string
	var bot bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Enroll this client with the coordinator",
		RunE: func(cmd *cobra.Command, args []string) error {
			if *server == "" {
				return fmt.Errorf("--server is required for registration")
			}
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			_, priv, err := ed25519.GenerateKey(rand.Reader)
			if err != nil {
				return fmt.Errorf("generate device key: %w", err)
			}
			csr, err := x509.CreateCertificateRequest(rand.Reader, &x509.CertificateRequest{
				Subject: pkix.Name{CommonName: name},
			}, priv)
			if err != nil {
				return fmt.Errorf("create CSR: %w", err)
			}

			conn, client, err := dialAnonymous(*server, caCertPath)
			if err != nil {
				return err
			}
			defer conn.Close()

			kind := pb.DeviceKind_USER
			if bot {
				kind = pb.DeviceKind_BOT
			}
			resp, err := client.Register(cmd.Context(), &pb.RegistrationRequest{
				Name: name,
				Kind: kind,
				Csr:  csr,
			})
			if err != nil {
				return err
			}

			if err := creds.save(priv, resp.GetCertificate(), caCertPath); err != nil {
				return err
			}
			if err := creds.saveSettings(clientSettings{Server: *server}); err != nil {
				return err
			}

			fmt.Println(ui.SuccessMsg("registered as %s", name))
			fmt.Print(ui.KeyValues("  ",
				ui.KV("device id", hex.EncodeToString(resp.GetDeviceId())),
				ui.KV("credentials", creds.dir),
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Device display name")
	cmd.Flags().StringVar(&caCertPath, "ca-cert", "", "Path to the coordinator CA certificate (PEM)")
	cmd.Flags().BoolVar(&bot, "bot", false, "Register as an unattended bot device")
	_ = cmd.MarkFlagRequired("ca-cert")
	return cmd
}

// save writes the device keypair and the trusted CA certificate into the
// credential directory.
func (c credentialStore) save(key ed25519.PrivateKey, certDER []byte, caCertPath string) error {
	if err := os.MkdirAll(c.dir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	keyDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return fmt.Errorf("marshal device key: %w", err)
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER})
	if err := os.WriteFile(c.keyPath(), keyPEM, 0o600); err != nil {
		return fmt.Errorf("write device key: %w", err)
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certDER})
	if err := os.WriteFile(c.certPath(), certPEM, 0o644); err != nil {
		return fmt.Errorf("write device certificate: %w", err)
	}

	caPEM, err := os.ReadFile(caCertPath)
	if err != nil {
		return fmt.Errorf("read CA certificate: %w", err)
	}
	if err := os.WriteFile(c.caPath(), caPEM, 0o644); err != nil {
		return fmt.Errorf("write CA certificate: %w", err)
	}
	return nil
}
