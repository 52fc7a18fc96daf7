package server

import (
	"fmt"

	"github.com/SPXcz/meesign-server/internal/group"
	"github.com/SPXcz/meesign-server/internal/identity"
	pb "github.com/SPXcz/meesign-server/internal/pb"
	"github.com/SPXcz/meesign-server/internal/task"
)

func protocolFromPB(p pb.ProtocolType) (group.Protocol, error) {
	switch p {
	case pb.ProtocolType_GG18:
		return group.GG18, nil
	case pb.ProtocolType_ELGAMAL:
		return group.ElGamal, nil
	case pb.ProtocolType_FROST:
		return group.Frost, nil
	case pb.ProtocolType_MUSIG2:
		return group.Musig2, nil
	default:
		return 0, fmt.Errorf("%w: unknown protocol %d", group.ErrInvalidGroupSpec, p)
	}
}

func protocolToPB(p group.Protocol) pb.ProtocolType {
	switch p {
	case group.ElGamal:
		return pb.ProtocolType_ELGAMAL
	case group.Frost:
		return pb.ProtocolType_FROST
	case group.Musig2:
		return pb.ProtocolType_MUSIG2
	default:
		return pb.ProtocolType_GG18
	}
}

func keyTypeFromPB(k pb.KeyType) (group.KeyType, error) {
	switch k {
	case pb.KeyType_SIGN_PDF:
		return group.SignPDF, nil
	case pb.KeyType_SIGN_CHALLENGE:
		return group.SignChallenge, nil
	case pb.KeyType_DECRYPT:
		return group.Decrypt, nil
	default:
		return 0, fmt.Errorf("%w: unknown key type %d", group.ErrInvalidGroupSpec, k)
	}
}

func keyTypeToPB(k group.KeyType) pb.KeyType {
	switch k {
	case group.SignChallenge:
		return pb.KeyType_SIGN_CHALLENGE
	case group.Decrypt:
		return pb.KeyType_DECRYPT
	default:
		return pb.KeyType_SIGN_PDF
	}
}

func kindFromPB(k pb.DeviceKind) identity.Kind {
	if k == pb.DeviceKind_BOT {
		return identity.KindBot
	}
	return identity.KindUser
}

func kindToPB(k identity.Kind) pb.DeviceKind {
	if k == identity.KindBot {
		return pb.DeviceKind_BOT
	}
	return pb.DeviceKind_USER
}

func taskTypeToPB(t task.Type) pb.TaskType {
	switch t {
	case task.TypeSignPDF:
		return pb.TaskType_TASK_SIGN_PDF
	case task.TypeSignChallenge:
		return pb.TaskType_TASK_SIGN_CHALLENGE
	case task.TypeDecrypt:
		return pb.TaskType_TASK_DECRYPT
	default:
		return pb.TaskType_TASK_GROUP
	}
}

func taskStateToPB(s task.State) pb.TaskState {
	switch s {
	case task.Running:
		return pb.TaskState_RUNNING
	case task.Finished:
		return pb.TaskState_FINISHED
	case task.Failed:
		return pb.TaskState_FAILED
	default:
		return pb.TaskState_CREATED
	}
}

// taskToPB renders a full task snapshot for one device: shared orchestration
// state, the device's inbound round payloads, and the request/result bytes.
func taskToPB(t *task.Task, device []byte) *pb.Task {
	out := taskSummaryToPB(t, device)
	out.Request = t.Request
	out.Result = t.Result
	return out
}

// taskSummaryToPB renders the snapshot without the request and result
// payloads. Bulk listings and the update stream carry summaries; clients fetch
// the payloads with a direct GetTask.
func taskSummaryToPB(t *task.Task, device []byte) *pb.Task {
	return &pb.Task{
		Id:      t.ID,
		Type:    taskTypeToPB(t.Type),
		State:   taskStateToPB(t.State),
		Round:   t.Round,
		Attempt: t.Attempt,
		Accept:  t.AcceptCount(),
		Reject:  t.RejectCount(),
		Data:    t.WorkFor(device),
	}
}

func groupToPB(g *group.Group) *pb.Group {
	return &pb.Group{
		Id:        g.ID,
		Name:      g.Name,
		Threshold: g.Threshold,
		Protocol:  protocolToPB(g.Protocol),
		KeyType:   keyTypeToPB(g.KeyType),
		DeviceIds: g.Members,
		Note:      g.Note,
	}
}

func deviceToPB(d *identity.Identity) *pb.Device {
	return &pb.Device{
		Id:          d.ID,
		Name:        d.Name,
		Kind:        kindToPB(d.Kind),
		Certificate: d.Certificate,
		LastActive:  uint64(d.LastActive.Unix()),
	}
}
