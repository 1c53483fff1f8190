package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/molt/internal/adapters/config"
	"go.trai.ch/molt/internal/adapters/telemetry/progrock"
	"go.trai.ch/molt/internal/core/domain"
	"go.trai.ch/molt/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			if cfg.Progress {
				return progrock.New(), nil
			}
			return NewNoop(), nil
		},
	})
}
