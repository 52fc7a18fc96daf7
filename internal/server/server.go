package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/golang/protobuf/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/SPXcz/meesign-server/internal/broker"
	"github.com/SPXcz/meesign-server/internal/group"
	"github.com/SPXcz/meesign-server/internal/identity"
	pb "github.com/SPXcz/meesign-server/internal/pb"
	"github.com/SPXcz/meesign-server/internal/task"
)

// LogSink persists client-reported diagnostic lines.
type LogSink interface {
	AppendClientLog(device []byte, message string) error
}

// Server is the MPC coordination surface. Handlers validate and convert;
// orchestration semantics live in the task engine and the registries.
type Server struct {
	pb.UnimplementedMPCServer

	identities *identity.Registry
	groups     *group.Registry
	engine     *task.Engine
	updates    *broker.Broker
	logs       LogSink
	log        *slog.Logger
}

func New(identities *identity.Registry, groups *group.Registry, engine *task.Engine, updates *broker.Broker, logs LogSink) *Server {
	return &Server{
		identities: identities,
		groups:     groups,
		engine:     engine,
		updates:    updates,
		logs:       logs,
		log:        slog.With("component", "grpc-server"),
	}
}

func (s *Server) Register(ctx context.Context, in *pb.RegistrationRequest) (*pb.RegistrationResponse, error) {
	device, err := s.identities.Register(in.GetName(), kindFromPB(in.GetKind()), in.GetCsr())
	if err != nil {
		return nil, toGRPCError(err)
	}
	return &pb.RegistrationResponse{
		DeviceId:    device.ID,
		Certificate: device.Certificate,
	}, nil
}

func (s *Server) Group(ctx context.Context, in *pb.GroupRequest) (*pb.Task, error) {
	device := deviceFromContext(ctx)
	protocol, err := protocolFromPB(in.GetProtocol())
	if err != nil {
		return nil, toGRPCError(err)
	}
	keyType, err := keyTypeFromPB(in.GetKeyType())
	if err != nil {
		return nil, toGRPCError(err)
	}
	request, err := proto.Marshal(in)
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode request: %v", err))
	}

	t, err := s.engine.CreateGroupTask(in.GetName(), in.GetDeviceIds(), in.GetThreshold(), protocol, keyType, in.GetNote(), request)
	if err != nil {
		return nil, toGRPCError(err)
	}
	return taskToPB(t, device), nil
}

func (s *Server) Sign(ctx context.Context, in *pb.SignRequest) (*pb.Task, error) {
	device := deviceFromContext(ctx)
	request, err := proto.Marshal(in)
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode request: %v", err))
	}

	t, err := s.engine.CreateSignTask(in.GetName(), in.GetGroupId(), in.GetData(), request)
	if err != nil {
		return nil, toGRPCError(err)
	}
	return taskToPB(t, device), nil
}

func (s *Server) Decrypt(ctx context.Context, in *pb.DecryptRequest) (*pb.Task, error) {
	device := deviceFromContext(ctx)
	request, err := proto.Marshal(in)
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode request: %v", err))
	}

	t, err := s.engine.CreateDecryptTask(in.GetName(), in.GetGroupId(), in.GetData(), request)
	if err != nil {
		return nil, toGRPCError(err)
	}
	return taskToPB(t, device), nil
}

func (s *Server) GetTask(ctx context.Context, in *pb.TaskRequest) (*pb.Task, error) {
	t, err := s.engine.Get(in.GetTaskId())
	if err != nil {
		return nil, toGRPCError(err)
	}
	return taskToPB(t, deviceFromContext(ctx)), nil
}

func (s *Server) UpdateTask(ctx context.Context, in *pb.TaskUpdate) (*pb.Resp, error) {
	device := deviceFromContext(ctx)
	if _, err := s.engine.SubmitRound(in.GetTaskId(), device, in.GetData(), in.GetAttempt()); err != nil {
		return nil, toGRPCError(err)
	}
	return &pb.Resp{Message: "OK"}, nil
}

func (s *Server) DecideTask(ctx context.Context, in *pb.TaskDecision) (*pb.Resp, error) {
	device := deviceFromContext(ctx)
	if _, err := s.engine.Decide(in.GetTaskId(), device, in.GetAccept()); err != nil {
		return nil, toGRPCError(err)
	}
	return &pb.Resp{Message: "OK"}, nil
}

func (s *Server) AcknowledgeTask(ctx context.Context, in *pb.TaskAcknowledgement) (*pb.Resp, error) {
	device := deviceFromContext(ctx)
	if err := s.engine.Acknowledge(in.GetTaskId(), device); err != nil {
		return nil, toGRPCError(err)
	}
	return &pb.Resp{Message: "OK"}, nil
}

func (s *Server) AbortTask(ctx context.Context, in *pb.TaskAbort) (*pb.Resp, error) {
	device := deviceFromContext(ctx)
	if _, err := s.engine.Abort(in.GetTaskId(), device); err != nil {
		return nil, toGRPCError(err)
	}
	return &pb.Resp{Message: "OK"}, nil
}

func (s *Server) RestartTask(ctx context.Context, in *pb.TaskRestart) (*pb.Resp, error) {
	device := deviceFromContext(ctx)
	if _, err := s.engine.Restart(in.GetTaskId(), device); err != nil {
		return nil, toGRPCError(err)
	}
	return &pb.Resp{Message: "OK"}, nil
}

func (s *Server) GetTasks(ctx context.Context, in *pb.TasksRequest) (*pb.Tasks, error) {
	device := in.GetDeviceId()
	tasks := s.engine.List(device)
	out := &pb.Tasks{Tasks: make([]*pb.Task, 0, len(tasks))}
	for _, t := range tasks {
		out.Tasks = append(out.Tasks, taskSummaryToPB(t, device))
	}
	return out, nil
}

func (s *Server) GetGroups(ctx context.Context, in *pb.GroupsRequest) (*pb.Groups, error) {
	groups := s.groups.List(in.GetDeviceId())
	out := &pb.Groups{Groups: make([]*pb.Group, 0, len(groups))}
	for _, g := range groups {
		out.Groups = append(out.Groups, groupToPB(g))
	}
	return out, nil
}

func (s *Server) GetDevices(ctx context.Context, in *pb.DevicesRequest) (*pb.Devices, error) {
	devices := s.identities.List()
	out := &pb.Devices{Devices: make([]*pb.Device, 0, len(devices))}
	for _, d := range devices {
		out.Devices = append(out.Devices, deviceToPB(d))
	}
	return out, nil
}

func (s *Server) Log(ctx context.Context, in *pb.LogRequest) (*pb.Resp, error) {
	if err := s.logs.AppendClientLog(deviceFromContext(ctx), in.GetMessage()); err != nil {
		return nil, toGRPCError(err)
	}
	return &pb.Resp{Message: "OK"}, nil
}

// SubscribeUpdates streams task transitions to the authenticated device,
// starting with a snapshot of its pending tasks.
func (s *Server) SubscribeUpdates(in *pb.SubscribeRequest, stream pb.MPC_SubscribeUpdatesServer) error {
	ctx := stream.Context()
	device := deviceFromContext(ctx)
	if len(device) == 0 {
		return status.Error(codes.Unauthenticated, "client certificate required")
	}

	updates := s.updates.Subscribe(ctx, device)
	s.log.Debug("update stream opened", "device", fmt.Sprintf("%x", device))
	for {
		select {
		case <-ctx.Done():
			return nil
		case t, ok := <-updates:
			if !ok {
				return nil
			}
			if err := stream.Send(taskSummaryToPB(t, device)); err != nil {
				return err
			}
		}
	}
}
