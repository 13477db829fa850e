package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"senacheck/internal/server"
	"senacheck/internal/sse"
)

// ShutdownComponents collects everything main tears down on exit.
type ShutdownComponents struct {
	Server  *server.Server
	Hub     *sse.Hub
	LogFile *os.File
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests, drain in-flight ones)
// 2. SSE hub (disconnect streaming clients)
// 3. Log file (closed last so the shutdown itself is captured)
// A failing step is logged and the sequence continues.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Hub != nil {
		slog.Info(LogMsgStoppingSSEHub)
		components.Hub.Stop()
	}

	slog.Info(LogMsgServerStopped)

	if components.LogFile != nil {
		_ = components.LogFile.Close()
	}
}
