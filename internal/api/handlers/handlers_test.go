package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"demo_services/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubChat struct {
	text   string
	err    error
	prompt string
}

func (s *stubChat) Chat(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.text, s.err
}

type stubVisits struct {
	count   int64
	err     error
	pingErr error
}

func (s *stubVisits) RecordVisit(context.Context) (int64, error) { return s.count, s.err }
func (s *stubVisits) Ping(context.Context) error                 { return s.pingErr }

func parseBody[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

func serveChat(chat ChatService, target string) *httptest.ResponseRecorder {
	h := NewChatHandler(chat, zap.NewNop())
	r := gin.New()
	r.GET("/", h.Root)
	r.GET("/chat", h.Chat)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestRoot(t *testing.T) {
	w := serveChat(&stubChat{}, "/")
	require.Equal(t, http.StatusOK, w.Code)

	out := parseBody[map[string]string](t, w.Body.Bytes())
	require.Equal(t, "ok", out["status"])
	require.Equal(t, "Gemini API Wrapper is running", out["message"])
}

func TestChat_HappyPath(t *testing.T) {
	chat := &stubChat{text: "Hi!"}
	w := serveChat(chat, "/chat?prompt="+url.QueryEscape("Hello world"))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Hello world", chat.prompt)
	require.Equal(t, "Hi!", parseBody[ChatResponse](t, w.Body.Bytes()).Response)
}

func TestChat_MapsServiceErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{name: "invalid argument", err: &service.Error{Kind: service.KindInvalidArgument, Message: "Prompt is required"}, status: http.StatusBadRequest, detail: "Prompt is required"},
		{name: "upstream", err: &service.Error{Kind: service.KindUpstream, Message: "quota exceeded", Err: errors.New("quota exceeded")}, status: http.StatusInternalServerError, detail: "quota exceeded"},
		{name: "internal", err: &service.Error{Kind: service.KindInternal, Message: "broken"}, status: http.StatusInternalServerError, detail: "broken"},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError, detail: "Internal Server Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serveChat(&stubChat{err: tc.err}, "/chat?prompt=Hello")
			require.Equal(t, tc.status, w.Code)
			require.Equal(t, tc.detail, parseBody[ErrorResponse](t, w.Body.Bytes()).Detail)
		})
	}
}

func TestChat_MissingPromptReachesServiceAsEmpty(t *testing.T) {
	chat := &stubChat{text: "unused"}
	serveChat(chat, "/chat")
	require.Equal(t, "", chat.prompt)
}

func serveVisits(visits VisitService, target string) *httptest.ResponseRecorder {
	h := NewVisitHandler(visits, zap.NewNop())
	r := gin.New()
	r.GET("/", h.Index)
	r.GET("/healthz", h.Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestIndex_RendersCount(t *testing.T) {
	w := serveVisits(&stubVisits{count: 42}, "/")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "あなたは 42 番目の訪問者です！", w.Body.String())
	require.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestIndex_FailureIsGeneric(t *testing.T) {
	w := serveVisits(&stubVisits{err: &service.Error{Kind: service.KindInternal, Message: "connect database", Err: errors.New("password authentication failed")}}, "/")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "Internal Server Error", w.Body.String())
}

func TestHealth(t *testing.T) {
	w := serveVisits(&stubVisits{}, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "connected", parseBody[map[string]string](t, w.Body.Bytes())["db"])

	w = serveVisits(&stubVisits{pingErr: errors.New("refused")}, "/healthz")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	out := parseBody[map[string]string](t, w.Body.Bytes())
	require.Equal(t, "error", out["status"])
	require.Equal(t, "disconnected", out["db"])
}
