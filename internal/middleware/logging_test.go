package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logLines は JSON ハンドラの出力を1行ずつ読み取ります。
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		lines = append(lines, m)
	}
	return lines
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("リクエストIDとステータスを記録し、ロガーをコンテキストに渡す", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			GetLogger(r.Context()).Info("inside handler")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{}}`))
		})
		handler := chimiddleware.RequestID(LoggingMiddleware(logger)(next))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/forecast", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		lines := logLines(t, &buf)
		require.Len(t, lines, 3)
		assert.Equal(t, "Request started", lines[0]["msg"])
		assert.Equal(t, "inside handler", lines[1]["msg"])
		assert.Equal(t, "Request completed", lines[2]["msg"])
		assert.Equal(t, "WARN", lines[2]["level"])
		assert.EqualValues(t, http.StatusNotFound, lines[2]["status"])

		reqID := lines[0]["req_id"]
		assert.NotEmpty(t, reqID)
		assert.Equal(t, reqID, lines[1]["req_id"])
	})

	t.Run("デバッグ時もボディは後続で読める", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		var received string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body)
			received = string(b)
			w.Write([]byte(`{"applied":true}`))
		})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/word-pairs/x/answer", strings.NewReader(`{"direction":1,"answer":true}`))
		req.Header.Set("Authorization", "Bearer secret-token")
		LoggingMiddleware(logger)(next).ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, `{"direction":1,"answer":true}`, received)
		assert.Contains(t, buf.String(), `"Response detail"`)
		assert.Contains(t, buf.String(), `{\"applied\":true}`)
		assert.NotContains(t, buf.String(), "secret-token")
	})
}

func TestGetLogger(t *testing.T) {
	assert.Same(t, slog.Default(), GetLogger(context.Background()))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(t, logger, GetLogger(WithLogger(context.Background(), logger)))
}

func TestFormatHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer abc")
	h.Set("Cookie", "session=1")
	h.Set("X-Tenant-Id", "t-1")

	got := formatHeaders(h)
	assert.NotContains(t, got["Authorization"], "abc")
	assert.NotContains(t, got["Cookie"], "session")
	assert.Equal(t, "t-1", got["X-Tenant-Id"])
}
