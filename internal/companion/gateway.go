package companion

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const callTimeout = 30 * time.Second

// Gateway wraps the external client with the local fallback. SendMessage
// never returns an error: anything the external side does wrong is logged
// and replaced with a deterministic in-character reply.
type Gateway struct {
	client Client
	log    *zap.Logger
}

// NewGateway builds a gateway. client may be nil, in which case every call
// answers from the fallback table (the no-credential mode).
func NewGateway(client Client, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{client: client, log: log}
}

type Reply struct {
	Text     string
	Fallback bool
}

func (g *Gateway) SendMessage(ctx context.Context, userText string, history []Message, c Context) Reply {
	if g.client == nil {
		return Reply{Text: fallbackReply(c.ProgressPercent, userText), Fallback: true}
	}

	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	text, err := g.client.Generate(callCtx, c.SystemPrompt(), history, userText)
	if err != nil {
		g.log.Warn("companion call failed, using fallback",
			zap.Error(err),
			zap.Int("progress_percent", c.ProgressPercent),
		)
		return Reply{Text: fallbackReply(c.ProgressPercent, userText), Fallback: true}
	}
	return Reply{Text: text}
}
