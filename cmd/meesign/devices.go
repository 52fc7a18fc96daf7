package main

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SPXcz/meesign-server/cmd/meesign/ui"
	pb "github.com/SPXcz/meesign-server/internal/pb"
)

func devicesCmd(creds credentialStore, server *string) *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List registered devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, client, err := creds.dial(*server)
			if err != nil {
				return err
			}
			defer conn.Close()

			resp, err := client.GetDevices(cmd.Context(), &pb.DevicesRequest{})
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(resp.GetDevices()))
			for _, d := range resp.GetDevices() {
				rows = append(rows, []string{
					shortID(d.GetId()),
					d.GetName(),
					deviceKindLabel(d.GetKind()),
					lastActiveLabel(d.GetLastActive()),
				})
			}
			fmt.Println(ui.Table([]string{"ID", "NAME", "KIND", "LAST ACTIVE"}, rows))
			return nil
		},
	}
}

func shortID(id []byte) string {
	s := hex.EncodeToString(id)
	if len(s) > 16 {
		return s[:16]
	}
	return s
}

func deviceKindLabel(k pb.DeviceKind) string {
	if k == pb.DeviceKind_BOT {
		return "bot"
	}
	return "user"
}

func lastActiveLabel(unix uint64) string {
	if unix == 0 {
		return ui.Muted("never")
	}
	return time.Unix(int64(unix), 0).Local().Format(time.DateTime)
}
