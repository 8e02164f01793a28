package discord

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"skyblock-market/contract"
)

// Discord interaction request and callback type identifiers.
const (
	interactionPing      = 1
	interactionCommand   = 2
	interactionComponent = 3
	interactionModal     = 5

	callbackPong           = 1
	callbackMessage        = 4
	callbackDeferredUpdate = 6
	callbackUpdateMessage  = 7
	callbackModal          = 9

	flagEphemeral = 64
)

const patchTimeout = 10 * time.Second

// fieldPatcher is the REST slice the webhook needs for display updates.
type fieldPatcher interface {
	PatchMessageField(ctx context.Context, ref contract.MessageRef, patch contract.FieldPatch) error
}

// Webhook terminates Discord's interactions endpoint: it checks the
// request signature, normalizes the interaction into a contract.Event,
// hands it to the bus and translates the reply back into an interaction
// callback. Display patches ride on the REST client after the callback
// is sent, best-effort.
type Webhook struct {
	log     *slog.Logger
	pubKey  ed25519.PublicKey
	bus     contract.IInteractionBus
	patcher fieldPatcher
}

func NewWebhook(log *slog.Logger, publicKeyHex string, bus contract.IInteractionBus, patcher fieldPatcher) (*Webhook, error) {
	key, err := hex.DecodeString(publicKeyHex)
	if err != nil || len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid interaction public key")
	}
	return &Webhook{log: log, pubKey: key, bus: bus, patcher: patcher}, nil
}

type interactionUser struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
}

type interactionRequest struct {
	Type      int    `json:"type"`
	ChannelID string `json:"channel_id"`
	Member    *struct {
		User interactionUser `json:"user"`
	} `json:"member"`
	User    *interactionUser `json:"user"`
	Message *struct {
		ID string `json:"id"`
	} `json:"message"`
	Data struct {
		Name          string `json:"name"`
		CustomID      string `json:"custom_id"`
		ComponentType int    `json:"component_type"`
		Values        []string `json:"values"`
		Options       []struct {
			Name  string `json:"name"`
			Value any    `json:"value"`
		} `json:"options"`
		Components []struct {
			Components []struct {
				CustomID string `json:"custom_id"`
				Value    string `json:"value"`
			} `json:"components"`
		} `json:"components"`
	} `json:"data"`
}

func (w *Webhook) Handler() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(rw, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(rw, "unreadable body", http.StatusBadRequest)
			return
		}
		if !w.verify(r.Header, body) {
			http.Error(rw, "invalid request signature", http.StatusUnauthorized)
			return
		}

		var interaction interactionRequest
		if err := json.Unmarshal(body, &interaction); err != nil {
			http.Error(rw, "malformed interaction", http.StatusBadRequest)
			return
		}

		if interaction.Type == interactionPing {
			w.respond(rw, map[string]any{"type": callbackPong})
			return
		}

		event, ok := normalizeEvent(interaction)
		if !ok {
			// Interaction shapes we do not handle are acknowledged silently
			w.respond(rw, map[string]any{"type": callbackDeferredUpdate})
			return
		}

		reply, err := w.bus.Submit(r.Context(), event)
		if err != nil {
			w.log.Warn("Interaction submission failed", "kind", event.Kind, "error", err)
			w.respond(rw, callbackFromReply(contract.Reply{
				Notice:    "❌ The bot is overloaded right now. Please try again.",
				Ephemeral: true,
			}))
			return
		}

		w.respond(rw, callbackFromReply(reply))

		if reply.Patch != nil && event.Origin != nil {
			// Callback already sent; the display refresh stands alone
			go w.patchDisplay(*event.Origin, *reply.Patch)
		}
	})
}

func (w *Webhook) verify(header http.Header, body []byte) bool {
	signature, err := hex.DecodeString(header.Get("X-Signature-Ed25519"))
	if err != nil || len(signature) != ed25519.SignatureSize {
		return false
	}
	timestamp := header.Get("X-Signature-Timestamp")
	return ed25519.Verify(w.pubKey, append([]byte(timestamp), body...), signature)
}

func (w *Webhook) respond(rw http.ResponseWriter, callback map[string]any) {
	rw.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(rw).Encode(callback); err != nil {
		w.log.Warn("Failed writing interaction callback", "error", err)
	}
}

func (w *Webhook) patchDisplay(origin contract.MessageRef, patch contract.FieldPatch) {
	ctx, cancel := context.WithTimeout(context.Background(), patchTimeout)
	defer cancel()
	if err := w.patcher.PatchMessageField(ctx, origin, patch); err != nil {
		w.log.Warn("Listing display patch failed", "channel", origin.ChannelID, "message", origin.MessageID, "error", err)
	}
}

// normalizeEvent flattens a Discord interaction into the event shape the
// core understands. Anything else returns ok=false.
func normalizeEvent(interaction interactionRequest) (contract.Event, bool) {
	actor := interaction.User
	if interaction.Member != nil {
		actor = &interaction.Member.User
	}
	if actor == nil {
		return contract.Event{}, false
	}

	event := contract.Event{
		ActorID:  actor.ID,
		ActorTag: tagOf(*actor),
		Payload:  map[string]string{},
	}
	if interaction.Message != nil {
		event.Origin = &contract.MessageRef{
			ChannelID: interaction.ChannelID,
			MessageID: interaction.Message.ID,
		}
	}

	switch interaction.Type {
	case interactionCommand:
		event.Kind = contract.EventCommand
		event.Name = interaction.Data.Name
		for _, option := range interaction.Data.Options {
			event.Payload[option.Name] = fmt.Sprint(option.Value)
		}
	case interactionComponent:
		event.Token = interaction.Data.CustomID
		if interaction.Data.ComponentType == componentSelect {
			event.Kind = contract.EventMenu
			if len(interaction.Data.Values) > 0 {
				event.Payload["value"] = interaction.Data.Values[0]
			}
		} else {
			event.Kind = contract.EventButton
		}
	case interactionModal:
		event.Kind = contract.EventForm
		event.Token = interaction.Data.CustomID
		for _, row := range interaction.Data.Components {
			for _, input := range row.Components {
				event.Payload[input.CustomID] = input.Value
			}
		}
	default:
		return contract.Event{}, false
	}
	return event, true
}

func tagOf(user interactionUser) string {
	if user.Discriminator != "" && user.Discriminator != "0" {
		return user.Username + "#" + user.Discriminator
	}
	return user.Username
}

func callbackFromReply(reply contract.Reply) map[string]any {
	switch {
	case reply.Render != nil:
		return map[string]any{
			"type": callbackMessage,
			"data": map[string]any{
				"embeds":     []embed{embedFromRender(*reply.Render)},
				"components": []component{actionRow(reply.Render.Actions)},
			},
		}
	case reply.Menu != nil:
		return map[string]any{
			"type": callbackMessage,
			"data": map[string]any{
				"content":    reply.Menu.Content,
				"components": []component{menuRow(*reply.Menu)},
				"flags":      flagEphemeral,
			},
		}
	case reply.Form != nil:
		return map[string]any{
			"type": callbackModal,
			"data": map[string]any{
				"custom_id":  reply.Form.Token,
				"title":      reply.Form.Title,
				"components": modalRows(*reply.Form),
			},
		}
	case reply.Notice != "" && reply.Update:
		return map[string]any{
			"type": callbackUpdateMessage,
			"data": map[string]any{
				"content":    reply.Notice,
				"components": []component{},
			},
		}
	case reply.Notice != "":
		data := map[string]any{"content": reply.Notice}
		if reply.Ephemeral {
			data["flags"] = flagEphemeral
		}
		return map[string]any{"type": callbackMessage, "data": data}
	default:
		// Tolerated no-op: acknowledge without any visible change
		return map[string]any{"type": callbackDeferredUpdate}
	}
}
