package hypixel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"skyblock-market/errors"
)

const testUUID = "069a79f444e94726a5befca90e38aaf5"

func newMojangServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = fmt.Fprint(w, body)
	}))
}

func newHypixelServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/player", r.URL.Path)
		require.Equal(t, "secret", r.URL.Query().Get("key"))
		_, _ = fmt.Fprint(w, body)
	}))
}

func newTestClient(mojang, hypixel string) *Client {
	return NewClient(logs.GetLoggerFromLevel(slog.LevelDebug), "secret", mojang, hypixel, time.Second)
}

func TestClient_Lookup_BuildsSnapshot(t *testing.T) {
	req := require.New(t)
	mojang := newMojangServer(t, http.StatusOK, `{"id":"`+testUUID+`","name":"Tester"}`)
	defer mojang.Close()
	hypixel := newHypixelServer(t, `{
		"success": true,
		"player": {"stats": {"SkyBlock": {
			"experience": 250000,
			"networth": "1.2b",
			"farming_xp": 50000,
			"mining_xp": 0,
			"combat_xp": 30000
		}}}
	}`)
	defer hypixel.Close()

	snapshot, err := newTestClient(mojang.URL, hypixel.URL).Lookup(context.Background(), "Tester")

	req.NoError(err)
	req.Equal(testUUID, snapshot.UUID)
	req.Equal(3, snapshot.Level)
	// mining_xp is zero: only farming (5) and combat (3) contribute
	req.Equal("4.0", snapshot.SkillAverage.String())
	req.Equal("1.2b", snapshot.Networth)
	req.Equal("Unknown", snapshot.Playtime)
}

func TestClient_Lookup_NumericNetworth(t *testing.T) {
	req := require.New(t)
	mojang := newMojangServer(t, http.StatusOK, `{"id":"`+testUUID+`","name":"Tester"}`)
	defer mojang.Close()
	hypixel := newHypixelServer(t, `{
		"success": true,
		"player": {"stats": {"SkyBlock": {"networth": 1500000, "playtime": 320}}}
	}`)
	defer hypixel.Close()

	snapshot, err := newTestClient(mojang.URL, hypixel.URL).Lookup(context.Background(), "Tester")

	req.NoError(err)
	req.Equal("1500000", snapshot.Networth)
	req.Equal("320", snapshot.Playtime)
	req.Equal(1, snapshot.Level)
	req.Equal("Unknown", snapshot.SkillAverage.String())
}

func TestClient_Lookup_UnknownPlayer(t *testing.T) {
	req := require.New(t)
	mojang := newMojangServer(t, http.StatusNotFound, "")
	defer mojang.Close()

	_, err := newTestClient(mojang.URL, "http://unused").Lookup(context.Background(), "NoSuchName")

	req.ErrorIs(err, errors.ErrProfileLookupFailed)
	req.ErrorIs(err, errors.ErrUnknownPlayer)
}

func TestClient_Lookup_HypixelRefusal(t *testing.T) {
	req := require.New(t)
	mojang := newMojangServer(t, http.StatusOK, `{"id":"`+testUUID+`","name":"Tester"}`)
	defer mojang.Close()
	hypixel := newHypixelServer(t, `{"success": false, "cause": "Invalid API key"}`)
	defer hypixel.Close()

	_, err := newTestClient(mojang.URL, hypixel.URL).Lookup(context.Background(), "Tester")

	req.ErrorIs(err, errors.ErrProfileLookupFailed)
	req.NotErrorIs(err, errors.ErrUnknownPlayer)
}

func TestClient_Lookup_PlayerWithoutRecord(t *testing.T) {
	req := require.New(t)
	mojang := newMojangServer(t, http.StatusOK, `{"id":"`+testUUID+`","name":"Tester"}`)
	defer mojang.Close()
	hypixel := newHypixelServer(t, `{"success": true, "player": null}`)
	defer hypixel.Close()

	snapshot, err := newTestClient(mojang.URL, hypixel.URL).Lookup(context.Background(), "Tester")

	req.NoError(err)
	req.Equal(1, snapshot.Level)
	req.Equal("Unknown", snapshot.Networth)
	req.Equal("Unknown", snapshot.SkillAverage.String())
}
