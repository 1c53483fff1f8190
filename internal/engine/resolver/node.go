package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/molt/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/molt/internal/adapters/jsr"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/molt/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/molt/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/molt/internal/core/domain"
	"go.trai.ch/molt/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			jsr.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			client, err := graft.Dep[ports.RegistryClient](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(client, log, tel, cfg), nil
		},
	})
}
