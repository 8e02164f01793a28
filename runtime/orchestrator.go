package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"skyblock-market/contract"
	"skyblock-market/runtime/workers"
)

var _ contract.IInteractionBus = (*Orchestrator)(nil)

// Orchestrator owns the interaction channel and the worker pool that
// drains it. The gateway submits a normalized event and blocks until a
// worker handled it or the submitter's context expires; the handling
// itself never blocks other listings.
type Orchestrator struct {
	log          *slog.Logger
	numWorkers   int
	supervisor   contract.ISupervisor
	router       contract.IRouter
	interactions chan contract.Interaction
}

func NewOrchestrator(
	log *slog.Logger,
	supervisor contract.ISupervisor,
	router contract.IRouter,
	numWorkers, bufferSize int,
) *Orchestrator {
	return &Orchestrator{
		log:          log,
		numWorkers:   numWorkers,
		supervisor:   supervisor,
		router:       router,
		interactions: make(chan contract.Interaction, bufferSize),
	}
}

// Submit queues one event and waits for its reply.
func (o *Orchestrator) Submit(ctx context.Context, event contract.Event) (contract.Reply, error) {
	interaction := contract.Interaction{
		Event: event,
		Reply: make(chan contract.Reply, 1),
	}

	select {
	case o.interactions <- interaction:
	case <-ctx.Done():
		o.log.Warn("Interaction dropped, channel full", "kind", event.Kind, "actor", event.ActorID)
		return contract.Reply{}, fmt.Errorf("submit interaction: %w", ctx.Err())
	}

	select {
	case reply := <-interaction.Reply:
		return reply, nil
	case <-ctx.Done():
		return contract.Reply{}, fmt.Errorf("await reply: %w", ctx.Err())
	}
}

// Start registers the interaction pool with the supervisor and runs it.
func (o *Orchestrator) Start(ctx context.Context) {
	for i := 0; i < o.numWorkers; i++ {
		o.supervisor.Add(workers.NewInteractionWorker(o.interactions, o.router, o.log))
	}
	o.log.Info("Starting orchestrator", "workers", o.numWorkers, "buffer", cap(o.interactions))
	go o.supervisor.Run(ctx)
}

// Stop cancels the supervised workers.
func (o *Orchestrator) Stop() {
	o.supervisor.Stop()
}
