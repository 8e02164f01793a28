//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"github.com/google/uuid"

	"skyblock-market/domain"
)

// EventKind tags a normalized inbound event from the presentation gateway.
type EventKind string

const (
	EventCommand EventKind = "command"
	EventButton  EventKind = "button"
	EventMenu    EventKind = "menu"
	EventForm    EventKind = "form"
)

// MessageRef points at the platform message an interactive element lives on.
type MessageRef struct {
	ChannelID string
	MessageID string
}

// Event is the normalized shape of a platform interaction. The gateway
// translates whatever the chat platform sends into this and nothing else
// crosses the boundary.
type Event struct {
	Kind     EventKind
	Name     string // command name, empty for component events
	Token    string // correlation token, empty for commands
	ActorID  string
	ActorTag string
	Payload  map[string]string // command options, menu value, form fields
	Origin   *MessageRef       // listing display the component belongs to, nil for commands
}

// Field is one rendered line of a listing display or notification.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

type ActionStyle string

const (
	ActionSuccess ActionStyle = "success"
	ActionPrimary ActionStyle = "primary"
)

// Action is an interactive element bound to a correlation token.
type Action struct {
	Token string
	Label string
	Style ActionStyle
}

// RenderRequest asks the gateway to display a listing with its actions.
type RenderRequest struct {
	Title   string
	Fields  []Field
	Footer  string
	Actions []Action
}

type MenuOption struct {
	Label       string
	Value       string
	Description string
}

// MenuPrompt asks the acting user to pick from a choice menu.
type MenuPrompt struct {
	Token       string
	Content     string
	Placeholder string
	Options     []MenuOption
}

type FormField struct {
	ID          string
	Label       string
	Placeholder string
	Required    bool
	Paragraph   bool
}

// FormPrompt asks the acting user to fill a free-form form.
type FormPrompt struct {
	Token  string
	Title  string
	Fields []FormField
}

// FieldPatch updates a single displayed field on an existing render.
type FieldPatch struct {
	Name   string
	Value  string
	Inline bool
}

// Reply is the router's answer to one interaction. At most one of
// Render, Menu and Form is set; Patch rides along with a Notice when the
// original listing display must be refreshed.
type Reply struct {
	Notice    string
	Ephemeral bool
	Update    bool // replace the component's own message instead of replying
	Render    *RenderRequest
	Menu      *MenuPrompt
	Form      *FormPrompt
	Patch     *FieldPatch
}

// Notification is a point-to-point message for a listing owner.
type Notification struct {
	Title  string
	Fields []Field
}

// IProfileLookup resolves a player name to profile statistics.
// The upstream is unreliable and rate-limited; failures propagate
// without retry.
type IProfileLookup interface {
	Lookup(ctx context.Context, ign string) (domain.ProfileSnapshot, error)
}

// IListingRepository is the single source of truth for listings.
// Not-found is a normal outcome, surfaced as errors.ErrListingNotFound.
type IListingRepository interface {
	Create(listing *domain.Listing) error
	Get(id uuid.UUID) (domain.Listing, error)
	AppendOffer(id uuid.UUID, offer domain.Offer) error
	All() []domain.Listing
}

// IMessenger delivers a direct message to a platform user.
type IMessenger interface {
	DirectMessage(ctx context.Context, userID string, notification Notification) error
}

// INotifier informs a listing owner of purchase intents and offers.
// Delivery is best-effort and must never roll back listing state.
type INotifier interface {
	NotifyOwner(ctx context.Context, ownerID string, notification Notification) error
}

// IInteractionBus accepts a normalized event and returns the reply once
// a worker has handled it.
type IInteractionBus interface {
	Submit(ctx context.Context, event Event) (Reply, error)
}

// IRouter resolves one normalized event into a reply. Failures are
// recovered here and come back as user-facing notices, never as errors.
type IRouter interface {
	Handle(ctx context.Context, event Event) Reply
}

// Interaction is the unit of work flowing from the bus to the pool
// workers. The Reply channel is buffered so a worker never blocks on a
// submitter that gave up.
type Interaction struct {
	Event Event
	Reply chan Reply
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
