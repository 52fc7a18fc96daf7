package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SPXcz/meesign-server/cmd/meesign/ui"
	pb "github.com/SPXcz/meesign-server/internal/pb"
)

func signCmd(creds credentialStore, server *string) *cobra.Command {
	var name string
	var groupID string
	var dataPath string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Open a signing task on an established group",
		RunE: func(cmd *cobra.Command, args []string) error {
			gid, err := hex.DecodeString(groupID)
			if err != nil {
				return fmt.Errorf("parse group id: %w", err)
			}
			data, err := os.ReadFile(dataPath)
			if err != nil {
				return fmt.Errorf("read payload: %w", err)
			}

			conn, client, err := creds.dial(*server)
			if err != nil {
				return err
			}
			defer conn.Close()

			t, err := client.Sign(cmd.Context(), &pb.SignRequest{
				Name:    name,
				GroupId: gid,
				Data:    data,
			})
			if err != nil {
				return err
			}
			fmt.Println(ui.SuccessMsg("signing task opened"))
			fmt.Print(taskDetails(t))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Request label shown to participants")
	cmd.Flags().StringVar(&groupID, "group", "", "Group id (hex)")
	cmd.Flags().StringVar(&dataPath, "data", "", "Path to the payload to sign")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("group")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func decryptCmd(creds credentialStore, server *string) *cobra.Command {
	var name string
	var groupID string
	var dataPath string

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Open a decryption task on an established group",
		RunE: func(cmd *cobra.Command, args []string) error {
			gid, err := hex.DecodeString(groupID)
			if err != nil {
				return fmt.Errorf("parse group id: %w", err)
			}
			data, err := os.ReadFile(dataPath)
			if err != nil {
				return fmt.Errorf("read payload: %w", err)
			}

			conn, client, err := creds.dial(*server)
			if err != nil {
				return err
			}
			defer conn.Close()

			t, err := client.Decrypt(cmd.Context(), &pb.DecryptRequest{
				Name:    name,
				GroupId: gid,
				Data:    data,
			})
			if err != nil {
				return err
			}
			fmt.Println(ui.SuccessMsg("decryption task opened"))
			fmt.Print(taskDetails(t))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Request label shown to participants")
	cmd.Flags().StringVar(&groupID, "group", "", "Group id (hex)")
	cmd.Flags().StringVar(&dataPath, "data", "", "Path to the ciphertext")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("group")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}
