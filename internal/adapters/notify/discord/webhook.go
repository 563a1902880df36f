// Package discord posts rotation summaries to a Discord webhook.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	defaultTimeout = 10 * time.Second
	embedColor     = 0x2e8b57
)

// Webhook delivers messages to one Discord webhook URL.
type Webhook struct {
	url      string
	client   *http.Client
	useEmbed bool
}

// Option applies a configuration option to the Webhook.
type Option func(*Webhook)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(w *Webhook) {
		if client != nil {
			w.client = client
		}
	}
}

// WithTimeout bounds webhook posts.
func WithTimeout(d time.Duration) Option {
	return func(w *Webhook) {
		if d > 0 {
			w.client.Timeout = d
		}
	}
}

// WithEmbed switches Notify from plain content to an embed post.
func WithEmbed(enabled bool) Option {
	return func(w *Webhook) { w.useEmbed = enabled }
}

// NewWebhook creates a webhook client for the given URL.
func NewWebhook(url string, opts ...Option) *Webhook {
	w := &Webhook{
		url:    strings.TrimSpace(url),
		client: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Name identifies the notifier in logs.
func (w *Webhook) Name() string { return "discord" }

// Notify posts the rotation summary. Depending on configuration this is a
// plain content message or a single embed with the summary as description
// and the footer carrying the run ID.
func (w *Webhook) Notify(ctx context.Context, title, summary, footer string) error {
	if w.useEmbed {
		return w.post(ctx, embedPayload{
			Embeds: []*discordgo.MessageEmbed{{
				Title:       title,
				Description: summary,
				Color:       embedColor,
				Footer:      &discordgo.MessageEmbedFooter{Text: footer},
			}},
		})
	}
	return w.post(ctx, contentPayload{Content: title + "\n" + summary})
}

type contentPayload struct {
	Content string `json:"content"`
}

type embedPayload struct {
	Embeds []*discordgo.MessageEmbed `json:"embeds"`
}

func (w *Webhook) post(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("serialize webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	return nil
}
