package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"skyblock-market/contract"
)

const DefaultAPIBase = "https://discord.com/api/v10"

var _ contract.IMessenger = (*Client)(nil)

// Client is a minimal Discord REST client covering what the bot needs:
// DM a listing owner, patch a listing display, register the command.
type Client struct {
	log   *slog.Logger
	http  *http.Client
	base  string
	token string
	appID string
}

func NewClient(log *slog.Logger, token, appID, base string, timeout time.Duration) *Client {
	return &Client{
		log:   log,
		http:  &http.Client{Timeout: timeout},
		base:  base,
		token: token,
		appID: appID,
	}
}

// DirectMessage opens (or reuses, Discord side) the DM channel with the
// user and posts the notification embed into it.
func (c *Client) DirectMessage(ctx context.Context, userID string, notification contract.Notification) error {
	var channel struct {
		ID string `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, "/users/@me/channels", map[string]string{"recipient_id": userID}, &channel)
	if err != nil {
		return fmt.Errorf("open dm channel: %w", err)
	}

	payload := map[string]any{"embeds": []embed{embedFromNotification(notification)}}
	if err := c.do(ctx, http.MethodPost, "/channels/"+channel.ID+"/messages", payload, nil); err != nil {
		return fmt.Errorf("send dm: %w", err)
	}
	return nil
}

// PatchMessageField re-reads the rendered listing message and rewrites
// a single embed field, leaving everything else as displayed.
func (c *Client) PatchMessageField(ctx context.Context, ref contract.MessageRef, patch contract.FieldPatch) error {
	path := "/channels/" + ref.ChannelID + "/messages/" + ref.MessageID

	var message struct {
		Embeds []embed `json:"embeds"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &message); err != nil {
		return fmt.Errorf("fetch message: %w", err)
	}
	if len(message.Embeds) == 0 {
		c.log.Debug("Message has no embed to patch", "channel", ref.ChannelID, "message", ref.MessageID)
		return nil
	}

	applyFieldPatch(&message.Embeds[0], patch)
	if err := c.do(ctx, http.MethodPatch, path, map[string]any{"embeds": message.Embeds}, nil); err != nil {
		return fmt.Errorf("edit message: %w", err)
	}
	return nil
}

// RegisterCommands overwrites the application's global slash commands.
func (c *Client) RegisterCommands(ctx context.Context) error {
	stringOption := func(name, description string, required bool) map[string]any {
		return map[string]any{"type": 3, "name": name, "description": description, "required": required}
	}
	commands := []map[string]any{{
		"name":        "list",
		"description": "Create a new Skyblock item listing",
		"options": []map[string]any{
			stringOption("ign", "Your Minecraft IGN", true),
			stringOption("item", "Item name/description", true),
			stringOption("price", "Starting price", true),
			stringOption("description", "Additional item details", false),
		},
	}}

	if err := c.do(ctx, http.MethodPut, "/applications/"+c.appID+"/commands", commands, nil); err != nil {
		return fmt.Errorf("register commands: %w", err)
	}
	c.log.Info("Slash commands registered")
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("discord %s %s: status %d: %s", method, path, resp.StatusCode, detail)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
