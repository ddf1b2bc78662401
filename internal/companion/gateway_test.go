package companion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	text string
	err  error

	seenSystem  string
	seenUser    string
	seenHistory []Message
}

func (s *stubClient) Generate(_ context.Context, systemPrompt string, history []Message, userMessage string) (string, error) {
	s.seenSystem = systemPrompt
	s.seenHistory = history
	s.seenUser = userMessage
	return s.text, s.err
}

func TestBuildContextClampsAndDefaults(t *testing.T) {
	c := BuildContext(140, 7, 5, "")
	assert.Equal(t, 100, c.ProgressPercent)
	assert.Equal(t, "traveler", c.UserName)

	c = BuildContext(-5, 0, 4, "Ana")
	assert.Equal(t, 0, c.ProgressPercent)
	assert.Equal(t, "Ana", c.UserName)
	assert.Contains(t, c.SystemPrompt(), "Ana")
	assert.Contains(t, c.SystemPrompt(), "0 of 4")
}

func TestSendMessagePassesThroughOnSuccess(t *testing.T) {
	stub := &stubClient{text: "Keep at it!"}
	g := NewGateway(stub, nil)

	c := BuildContext(50, 2, 4, "Ana")
	history := []Message{{Role: RoleUser, Content: "hi"}, {Role: RoleAssistant, Content: "hello"}}
	reply := g.SendMessage(context.Background(), "how am I doing?", history, c)

	assert.Equal(t, "Keep at it!", reply.Text)
	assert.False(t, reply.Fallback)
	assert.Equal(t, c.SystemPrompt(), stub.seenSystem)
	assert.Equal(t, "how am I doing?", stub.seenUser)
	require.Len(t, stub.seenHistory, 2)
}

func TestSendMessageFallsBackOnError(t *testing.T) {
	g := NewGateway(&stubClient{err: errors.New("network down")}, nil)

	c := BuildContext(0, 0, 5, "Ana")
	reply := g.SendMessage(context.Background(), "hello", nil, c)

	assert.True(t, reply.Fallback)
	// Deterministic: progress 0 always answers from the not-started branch.
	assert.Equal(t, fallbackDefaults[bucketNotStarted], reply.Text)

	again := g.SendMessage(context.Background(), "hello", nil, c)
	assert.Equal(t, reply.Text, again.Text)
}

func TestSendMessageFallsBackOnEmptyText(t *testing.T) {
	g := NewGateway(&stubClient{text: "", err: errors.New("empty completion")}, nil)
	reply := g.SendMessage(context.Background(), "anything", nil, BuildContext(100, 4, 4, "Ana"))
	assert.True(t, reply.Fallback)
	assert.Equal(t, fallbackDefaults[bucketDone], reply.Text)
}

func TestNilClientIsFallbackOnly(t *testing.T) {
	g := NewGateway(nil, nil)
	reply := g.SendMessage(context.Background(), "hey", nil, BuildContext(30, 1, 3, "Ana"))
	assert.True(t, reply.Fallback)
	assert.NotEmpty(t, reply.Text)
}

func TestFallbackBuckets(t *testing.T) {
	cases := map[int]progressBucket{
		0: bucketNotStarted, 1: bucketEarly, 24: bucketEarly,
		25: bucketQuarter, 49: bucketQuarter, 50: bucketHalf,
		74: bucketHalf, 75: bucketAlmost, 99: bucketAlmost, 100: bucketDone,
	}
	for percent, want := range cases {
		assert.Equal(t, want, bucketFor(percent), "percent=%d", percent)
	}
}

func TestFallbackKeywordRules(t *testing.T) {
	// Keyword rule beats the bucket default.
	got := fallbackReply(0, "I'm so TIRED today")
	assert.Equal(t, fallbackRules[bucketNotStarted][0].reply, got)

	// Unmatched text lands on the bucket default and never panics.
	assert.Equal(t, fallbackDefaults[bucketHalf], fallbackReply(60, "xyzzy"))
	assert.NotEmpty(t, fallbackReply(100, ""))
}
