package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dealership-backoffice/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTelegramLoggerRequiresCredentials(t *testing.T) {
	assert.Nil(t, NewTelegramLogger(nil))
	assert.Nil(t, NewTelegramLogger(&Creds{Creds: config.TelegramBotConfig{Token: "t"}}))

	var missing *Creds
	assert.NotPanics(t, func() { missing.LogError("boom", errors.New("x")) })
}

func TestTelegramLoggerPostsFormattedMessage(t *testing.T) {
	var got telegramRequest
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	logger := NewTelegramLogger(&Creds{
		Creds:   config.TelegramBotConfig{ChatId: "42", Token: "abc"},
		baseURL: srv.URL,
	})
	require.NotNil(t, logger)

	logger.LogError("Failed to save car", errors.New("timeout"))

	assert.Equal(t, "/botabc/sendMessage", path)
	assert.Equal(t, "42", got.ChatId)
	assert.Equal(t, "❌ ERROR: Failed to save car: timeout", got.Text)
}

func TestTelegramLoggerReportsHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	logger := NewTelegramLogger(&Creds{
		Creds:   config.TelegramBotConfig{ChatId: "42", Token: "abc"},
		baseURL: srv.URL,
	})
	err := logger.sendRequest("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestFormatMessage(t *testing.T) {
	assert.Equal(t, "✅ SUCCESS: done", formatMessage(iconSuccess, "SUCCESS", "  done "))
	assert.Equal(t, "ℹ️ INFO: -", formatMessage(iconInfo, "INFO", ""))
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf)
	logger.Log("started")
	logger.LogError("Failed to load attributes", errors.New("refused"))
	logger.LogSuccess("Attribute created successfully")

	out := buf.String()
	assert.True(t, strings.Contains(out, "msg=started"))
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "err=refused")
	assert.Contains(t, out, "status=success")
}
