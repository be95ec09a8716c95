// Package transport exposes the ledger over gRPC and HTTP.
package transport

import (
	"context"
	"fmt"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
)

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer

	view ChainView
}

// NewExplorerHandler returns an ExplorerHandler reporting on view.
func NewExplorerHandler(view ChainView) blockinsight7000v1.ExplorerServiceServer {
	return &ExplorerHandler{view: view}
}

// Health reports server health and the best connected height.
func (h *ExplorerHandler) Health(_ context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	description := "no connected blocks"
	if best, ok := h.view.Best(); ok {
		description = fmt.Sprintf("best block %s at height %d", best.Hash, best.Height)
	}
	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: description,
	}, nil
}
