package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text   string
	err    error
	prompt string
	calls  int
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompt = prompt
	return s.text, s.err
}

func expectServiceError(t *testing.T, err error, kind ErrorKind, message string) *Error {
	t.Helper()
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, kind, svcErr.Kind)
	require.Equal(t, message, svcErr.Message)
	return svcErr
}

func TestNewChatService_ValidatesDependency(t *testing.T) {
	_, err := NewChatService(nil)
	require.Error(t, err)
}

func TestChat_HappyPath(t *testing.T) {
	gen := &stubGenerator{text: "Hello! How can I help?"}
	svc, err := NewChatService(gen)
	require.NoError(t, err)

	out, err := svc.Chat(context.Background(), "Hello")
	require.NoError(t, err)
	require.Equal(t, "Hello! How can I help?", out)
	require.Equal(t, "Hello", gen.prompt)
}

func TestChat_EmptyPrompt(t *testing.T) {
	gen := &stubGenerator{text: "unused"}
	svc, err := NewChatService(gen)
	require.NoError(t, err)

	_, err = svc.Chat(context.Background(), "")
	expectServiceError(t, err, KindInvalidArgument, "Prompt is required")
	require.Zero(t, gen.calls)
}

func TestChat_UpstreamErrorPassesMessageThrough(t *testing.T) {
	upstream := errors.New("429 Resource has been exhausted")
	svc, err := NewChatService(&stubGenerator{err: upstream})
	require.NoError(t, err)

	_, err = svc.Chat(context.Background(), "Hello")
	svcErr := expectServiceError(t, err, KindUpstream, "429 Resource has been exhausted")
	require.ErrorIs(t, svcErr, upstream)
	require.Equal(t, KindUpstream, KindOf(err))
}

func TestKindOf(t *testing.T) {
	require.Equal(t, KindInternal, KindOf(errors.New("boom")))
	require.Equal(t, KindInvalidArgument, KindOf(newError(KindInvalidArgument, "bad", nil)))
}

func TestError_Format(t *testing.T) {
	require.Equal(t, "service: INVALID_ARGUMENT: Prompt is required", newError(KindInvalidArgument, "Prompt is required", nil).Error())
	require.Equal(t, "service: INTERNAL_ERROR: record visit: locked", newError(KindInternal, "record visit", errors.New("locked")).Error())

	var nilErr *Error
	require.Empty(t, nilErr.Error())
	require.NoError(t, nilErr.Unwrap())
}
