package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SPXcz/meesign-server/cmd/meesign/ui"
	pb "github.com/SPXcz/meesign-server/internal/pb"
)

func tasksCmd(creds credentialStore, server *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Inspect and manage tasks",
	}
	cmd.AddCommand(
		tasksListCmd(creds, server),
		tasksGetCmd(creds, server),
		tasksAbortCmd(creds, server),
		tasksRestartCmd(creds, server),
		tasksWatchCmd(creds, server),
	)
	return cmd
}

func tasksListCmd(creds credentialStore, server *string) *cobra.Command {
	var device string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, client, err := creds.dial(*server)
			if err != nil {
				return err
			}
			defer conn.Close()

			req := &pb.TasksRequest{}
			if device != "" {
				id, err := hex.DecodeString(device)
				if err != nil {
					return fmt.Errorf("parse device id: %w", err)
				}
				req.DeviceId = id
			}
			resp, err := client.GetTasks(cmd.Context(), req)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(resp.GetTasks()))
			for _, t := range resp.GetTasks() {
				rows = append(rows, []string{
					shortID(t.GetId()),
					taskTypeLabel(t.GetType()),
					taskStateLabel(t.GetState()),
					fmt.Sprintf("%d", t.GetRound()),
					fmt.Sprintf("%d", t.GetAttempt()),
					fmt.Sprintf("%d/%d", t.GetAccept(), t.GetAccept()+t.GetReject()),
				})
			}
			fmt.Println(ui.Table([]string{"ID", "TYPE", "STATE", "ROUND", "ATTEMPT", "ACCEPT"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&device, "device", "", "Only tasks involving this device id (hex)")
	return cmd
}

func tasksGetCmd(creds credentialStore, server *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <task-id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("parse task id: %w", err)
			}
			conn, client, err := creds.dial(*server)
			if err != nil {
				return err
			}
			defer conn.Close()

			t, err := client.GetTask(cmd.Context(), &pb.TaskRequest{TaskId: id})
			if err != nil {
				return err
			}
			fmt.Print(taskDetails(t))
			return nil
		},
	}
}

func tasksAbortCmd(creds credentialStore, server *string) *cobra.Command {
	return &cobra.Command{
		Use:   "abort <task-id>",
		Short: "Fail a task this device participates in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("parse task id: %w", err)
			}
			conn, client, err := creds.dial(*server)
			if err != nil {
				return err
			}
			defer conn.Close()

			if _, err := client.AbortTask(cmd.Context(), &pb.TaskAbort{TaskId: id}); err != nil {
				return err
			}
			fmt.Println(ui.SuccessMsg("task %s aborted", args[0]))
			return nil
		},
	}
}

func tasksRestartCmd(creds credentialStore, server *string) *cobra.Command {
	return &cobra.Command{
		Use:   "restart <task-id>",
		Short: "Retry the current round of a stalled task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("parse task id: %w", err)
			}
			conn, client, err := creds.dial(*server)
			if err != nil {
				return err
			}
			defer conn.Close()

			if _, err := client.RestartTask(cmd.Context(), &pb.TaskRestart{TaskId: id}); err != nil {
				return err
			}
			fmt.Println(ui.SuccessMsg("task %s restarted", args[0]))
			return nil
		},
	}
}

func tasksWatchCmd(creds credentialStore, server *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream task updates for this device",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, client, err := creds.dial(*server)
			if err != nil {
				return err
			}
			defer conn.Close()

			stream, err := client.SubscribeUpdates(cmd.Context(), &pb.SubscribeRequest{})
			if err != nil {
				return err
			}
			for {
				t, err := stream.Recv()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Printf("%s %s %s round=%d attempt=%d\n",
					ui.Accent(shortID(t.GetId())),
					taskTypeLabel(t.GetType()),
					taskStateLabel(t.GetState()),
					t.GetRound(), t.GetAttempt())
			}
		},
	}
}

func taskDetails(t *pb.Task) string {
	pairs := []ui.Pair{
		ui.KV("id", hex.EncodeToString(t.GetId())),
		ui.KV("type", taskTypeLabel(t.GetType())),
		ui.KV("state", taskStateLabel(t.GetState())),
		ui.KV("round", fmt.Sprintf("%d", t.GetRound())),
		ui.KV("attempt", fmt.Sprintf("%d", t.GetAttempt())),
		ui.KV("accept", fmt.Sprintf("%d", t.GetAccept())),
		ui.KV("reject", fmt.Sprintf("%d", t.GetReject())),
	}
	if len(t.GetResult()) > 0 {
		pairs = append(pairs, ui.KV("result", hex.EncodeToString(t.GetResult())))
	}
	return ui.KeyValues("  ", pairs...)
}

func taskTypeLabel(t pb.TaskType) string {
	switch t {
	case pb.TaskType_TASK_SIGN_PDF:
		return "sign-pdf"
	case pb.TaskType_TASK_SIGN_CHALLENGE:
		return "sign-challenge"
	case pb.TaskType_TASK_DECRYPT:
		return "decrypt"
	default:
		return "group"
	}
}

func taskStateLabel(s pb.TaskState) string {
	switch s {
	case pb.TaskState_RUNNING:
		return ui.WarnStyle.Render("running")
	case pb.TaskState_FINISHED:
		return ui.SuccessStyle.Render("finished")
	case pb.TaskState_FAILED:
		return ui.ErrorStyle.Render("failed")
	default:
		return ui.Muted("created")
	}
}
