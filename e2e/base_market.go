package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"

	"skyblock-market/contract"
	"skyblock-market/hypixel"
	"skyblock-market/observability"
	"skyblock-market/repositories"
	"skyblock-market/runtime"
	"skyblock-market/runtime/workers"
	"skyblock-market/services"
)

type BaseMarketSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseMarketSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// Header prints a colorized step marker so scenario logs stay readable
func (s *BaseMarketSuite) Header(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// recordingMessenger stands in for the chat platform's DM delivery.
type recordingMessenger struct {
	mu   sync.Mutex
	sent []sentMessage
}

type sentMessage struct {
	UserID       string
	Notification contract.Notification
}

func (m *recordingMessenger) DirectMessage(_ context.Context, userID string, notification contract.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMessage{UserID: userID, Notification: notification})
	return nil
}

func (m *recordingMessenger) Sent() []sentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sentMessage, len(m.sent))
	copy(out, m.sent)
	return out
}

// Harness wires the whole engine in-process, with fake Mojang and
// Hypixel upstreams, and drives it through the orchestrator exactly
// like the interactions endpoint would.
type Harness struct {
	suite *BaseMarketSuite

	Listings     *repositories.ListingRepository
	Messenger    *recordingMessenger
	Stats        *observability.MarketStats
	Orchestrator *runtime.Orchestrator

	mojang  *httptest.Server
	hypixel *httptest.Server
	cancel  context.CancelFunc
}

// knownPlayers maps IGNs the fake Mojang endpoint resolves.
var knownPlayers = map[string]string{
	"Technoblade": "b876ec32e396476ba1158438d83c67d4",
	"Dream":       "ec70bcaf702f4bb8b48d276fa52a780c",
}

func (s *BaseMarketSuite) NewHarness(t *testing.T) *Harness {
	t.Helper()
	log := logs.GetLoggerFromString("ERROR")

	mojang := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ign := strings.TrimPrefix(r.URL.Path, "/users/profiles/minecraft/")
		id, ok := knownPlayers[ign]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": id, "name": ign})
	}))

	hypixelServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"player": map[string]any{
				"stats": map[string]any{
					"SkyBlock": map[string]any{
						"experience": 250_000,
						"networth":   "1.2b",
						"playtime":   "300h",
						"farming_xp": 200_000,
						"mining_xp":  400_000,
						"combat_xp":  300_000,
					},
				},
			},
		})
	}))

	messenger := &recordingMessenger{}
	stats := observability.NewMarketStats(log)
	listings := repositories.NewListingRepository(log)
	profiles := hypixel.NewClient(log, "e2e-key", mojang.URL, hypixelServer.URL, s.Config.StepTimeout)
	notifier := services.NewNotificationDispatcher(log, messenger, stats, s.Config.StepTimeout)
	market := services.NewMarketService(log, listings, profiles, notifier, stats)
	router := runtime.NewRouter(log, market, stats)
	sup := workers.NewSupervisor(log)
	orchestrator := runtime.NewOrchestrator(log, sup, router, s.Config.NumWorkers, s.Config.BufferSize)

	ctx, cancel := context.WithCancel(context.Background())
	orchestrator.Start(ctx)

	harness := &Harness{
		suite:        s,
		Listings:     listings,
		Messenger:    messenger,
		Stats:        stats,
		Orchestrator: orchestrator,
		mojang:       mojang,
		hypixel:      hypixelServer,
		cancel:       cancel,
	}
	t.Cleanup(harness.Close)
	return harness
}

// Submit pushes one event through the live worker pool and waits for
// its reply, logging the exchange when E2E_DEBUG_EVENTS is enabled.
func (h *Harness) Submit(t *testing.T, event contract.Event) contract.Reply {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), h.suite.Config.StepTimeout)
	defer cancel()

	reply, err := h.Orchestrator.Submit(ctx, event)
	h.suite.Require().NoError(err)

	if h.suite.Config.DebugEvents {
		t.Logf("EVENT %s %q -> notice=%q render=%v menu=%v form=%v patch=%v",
			event.Kind, event.Name+event.Token, reply.Notice,
			reply.Render != nil, reply.Menu != nil, reply.Form != nil, reply.Patch != nil)
	}
	return reply
}

func (h *Harness) Close() {
	h.cancel()
	h.Orchestrator.Stop()
	h.mojang.Close()
	h.hypixel.Close()
}
