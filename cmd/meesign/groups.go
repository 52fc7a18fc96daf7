package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SPXcz/meesign-server/cmd/meesign/ui"
	pb "github.com/SPXcz/meesign-server/internal/pb"
)

func groupsCmd(creds credentialStore, server *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List and request signing groups",
	}
	cmd.AddCommand(groupsListCmd(creds, server), groupsCreateCmd(creds, server))
	return cmd
}

func groupsListCmd(creds credentialStore, server *string) *cobra.Command {
	var device string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List established groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, client, err := creds.dial(*server)
			if err != nil {
				return err
			}
			defer conn.Close()

			req := &pb.GroupsRequest{}
			if device != "" {
				id, err := hex.DecodeString(device)
				if err != nil {
					return fmt.Errorf("parse device id: %w", err)
				}
				req.DeviceId = id
			}
			resp, err := client.GetGroups(cmd.Context(), req)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(resp.GetGroups()))
			for _, g := range resp.GetGroups() {
				rows = append(rows, []string{
					shortID(g.GetId()),
					g.GetName(),
					fmt.Sprintf("%d/%d", g.GetThreshold(), len(g.GetDeviceIds())),
					protocolLabel(g.GetProtocol()),
					keyTypeLabel(g.GetKeyType()),
				})
			}
			fmt.Println(ui.Table([]string{"ID", "NAME", "THRESHOLD", "PROTOCOL", "KEY TYPE"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&device, "device", "", "Only groups containing this device id (hex)")
	return cmd
}

func groupsCreateCmd(creds credentialStore, server *string) *cobra.Command {
	var name string
	var members []string
	var threshold uint32
	var protocol string
	var keyType string
	var note string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a group formation task",
		RunE: func(cmd *cobra.Command, args []string) error {
			proto, err := parseProtocolFlag(protocol)
			if err != nil {
				return err
			}
			kt, err := parseKeyTypeFlag(keyType)
			if err != nil {
				return err
			}
			deviceIDs := make([][]byte, 0, len(members))
			for _, m := range members {
				id, err := hex.DecodeString(m)
				if err != nil {
					return fmt.Errorf("parse member id %q: %w", m, err)
				}
				deviceIDs = append(deviceIDs, id)
			}

			conn, client, err := creds.dial(*server)
			if err != nil {
				return err
			}
			defer conn.Close()

			t, err := client.Group(cmd.Context(), &pb.GroupRequest{
				Name:      name,
				DeviceIds: deviceIDs,
				Threshold: threshold,
				Protocol:  proto,
				KeyType:   kt,
				Note:      note,
			})
			if err != nil {
				return err
			}

			fmt.Println(ui.SuccessMsg("group formation task opened"))
			fmt.Print(taskDetails(t))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Group display name")
	cmd.Flags().StringSliceVar(&members, "member", nil, "Member device id (hex), repeatable")
	cmd.Flags().Uint32Var(&threshold, "threshold", 0, "Signing threshold")
	cmd.Flags().StringVar(&protocol, "protocol", "gg18", "Protocol: gg18, elgamal, frost, musig2")
	cmd.Flags().StringVar(&keyType, "key-type", "sign_pdf", "Key type: sign_pdf, sign_challenge, decrypt")
	cmd.Flags().StringVar(&note, "note", "", "Optional operator note")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("member")
	_ = cmd.MarkFlagRequired("threshold")
	return cmd
}

func parseProtocolFlag(s string) (pb.ProtocolType, error) {
	switch s {
	case "gg18":
		return pb.ProtocolType_GG18, nil
	case "elgamal":
		return pb.ProtocolType_ELGAMAL, nil
	case "frost":
		return pb.ProtocolType_FROST, nil
	case "musig2":
		return pb.ProtocolType_MUSIG2, nil
	default:
		return 0, fmt.Errorf("unknown protocol %q", s)
	}
}

func parseKeyTypeFlag(s string) (pb.KeyType, error) {
	switch s {
	case "sign_pdf":
		return pb.KeyType_SIGN_PDF, nil
	case "sign_challenge":
		return pb.KeyType_SIGN_CHALLENGE, nil
	case "decrypt":
		return pb.KeyType_DECRYPT, nil
	default:
		return 0, fmt.Errorf("unknown key type %q", s)
	}
}

func protocolLabel(p pb.ProtocolType) string {
	switch p {
	case pb.ProtocolType_ELGAMAL:
		return "elgamal"
	case pb.ProtocolType_FROST:
		return "frost"
	case pb.ProtocolType_MUSIG2:
		return "musig2"
	default:
		return "gg18"
	}
}

func keyTypeLabel(k pb.KeyType) string {
	switch k {
	case pb.KeyType_SIGN_CHALLENGE:
		return "sign_challenge"
	case pb.KeyType_DECRYPT:
		return "decrypt"
	default:
		return "sign_pdf"
	}
}
