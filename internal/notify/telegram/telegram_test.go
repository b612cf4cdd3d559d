package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSend(t *testing.T) {
	var got sendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/botsecret/sendMessage", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := New(zap.NewNop().Sugar(), srv.URL, "secret", time.Second)
	require.NoError(t, s.Send(context.Background(), "chat-1", "<b>hi</b>"))

	require.Equal(t, "chat-1", got.ChatID)
	require.Equal(t, "<b>hi</b>", got.Text)
	require.Equal(t, "HTML", got.ParseMode)
}

func TestSendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	s := New(zap.NewNop().Sugar(), srv.URL, "secret", time.Second)
	require.Error(t, s.Send(context.Background(), "chat-1", "hi"))
}
