package workers

import (
	"context"
	"log/slog"

	"skyblock-market/contract"
)

// Ensure *InteractionWorker implements the contract.Worker interface at
// compile time. This prevents "type mismatch" errors from appearing late
// in other packages and acts as a static assertion of our architectural rules.
var _ contract.Worker = (*InteractionWorker)(nil)

// InteractionWorker drains the shared interaction channel. Each unit of
// work is one inbound event handled to completion: route, mutate, reply.
// Interactions for different listings are independent, so any number of
// these workers can run side by side.
type InteractionWorker struct {
	interactions chan contract.Interaction
	router       contract.IRouter
	log          *slog.Logger
}

func NewInteractionWorker(
	interactions chan contract.Interaction,
	router contract.IRouter,
	log *slog.Logger,
) *InteractionWorker {
	return &InteractionWorker{
		interactions: interactions,
		router:       router,
		log:          log,
	}
}

func (w *InteractionWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case interaction, ok := <-w.interactions:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			reply := w.router.Handle(ctx, interaction.Event)
			select {
			case interaction.Reply <- reply:
			default:
				// Submitter gave up waiting, nothing left to deliver to
				w.log.Warn("Reply abandoned", "kind", interaction.Event.Kind, "actor", interaction.Event.ActorID)
			}
		}
	}
}
