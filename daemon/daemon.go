package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	systemd "github.com/coreos/go-systemd/v22/daemon"
	"golang.org/x/sync/errgroup"

	"github.com/SPXcz/meesign-server/config"
	"github.com/SPXcz/meesign-server/internal/broker"
	"github.com/SPXcz/meesign-server/internal/group"
	"github.com/SPXcz/meesign-server/internal/identity"
	"github.com/SPXcz/meesign-server/internal/server"
	"github.com/SPXcz/meesign-server/internal/storage/sqlite"
	"github.com/SPXcz/meesign-server/internal/task"
)

// Run wires storage, the CA, the registries, the task engine, and the update
// broker, starts the gRPC listener, and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	shutdownTelemetry, err := setupTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			slog.Warn("telemetry shutdown", "err", err)
		}
	}()

	store, err := sqlite.Open(filepath.Join(cfg.DataDir, "meesign.db"))
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ca, err := identity.LoadOrCreateCA(filepath.Join(cfg.DataDir, "ca"))
	if err != nil {
		return err
	}
	identities, err := identity.NewRegistry(ca, store)
	if err != nil {
		return err
	}
	groups, err := group.NewRegistry(identities, store)
	if err != nil {
		return err
	}

	// The broker's snapshot source is the engine, and the engine publishes to
	// the broker. Late-bind the source; nothing subscribes before Serve.
	src := &engineSource{}
	updates := broker.NewBroker(src)
	engine, err := task.NewEngine(cfg.TaskConfig(), identities, groups, store, updates)
	if err != nil {
		return err
	}
	src.engine = engine
	defer engine.Close()
	defer updates.Close()

	mpc := server.New(identities, groups, engine, updates, store)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return listenAndServe(ctx, cfg, ca, identities, mpc, notifyReady) })
	return g.Wait()
}

func notifyReady() {
	if _, err := systemd.SdNotify(false, systemd.SdNotifyReady); err != nil {
		slog.Warn("systemd ready notification", "err", err)
	}
}

type engineSource struct {
	engine *task.Engine
}

func (s *engineSource) List(device []byte) []*task.Task {
	return s.engine.List(device)
}
