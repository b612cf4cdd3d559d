// Package telegram implements the message sink over the Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Sink posts messages through the sendMessage method of one bot.
type Sink struct {
	log     *zap.SugaredLogger
	http    *http.Client
	apiBase string
	token   string
}

// New constructs a Sink. The bot token is fixed at construction time.
func New(log *zap.SugaredLogger, apiBase, token string, timeout time.Duration) *Sink {
	return &Sink{
		log:     log.Named("telegram"),
		http:    &http.Client{Timeout: timeout},
		apiBase: apiBase,
		token:   token,
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Send delivers one HTML-formatted message to a chat.
func (s *Sink) Send(ctx context.Context, chatID, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	s.log.Debugw("message sent", "chat_id", chatID)
	return nil
}
