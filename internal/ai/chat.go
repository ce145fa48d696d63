package ai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/padlasalon/salon-booking/internal/kv"
)

const (
	chatTTL         = 30 * time.Minute
	chatMaxTurns    = 20
	chatFallbackMsg = "Thanks for reaching out! Our stylists are happy to help - book an appointment and we'll take care of the rest."
)

const chatSystemPrompt = `You are the friendly front-desk assistant of Padla Hair Salon.
Answer questions about services, pricing, timings (10:00-20:00 daily) and loyalty points briefly and warmly.
If asked to book, direct the customer to the booking flow.`

type chatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Chat appends the message to the session transcript and returns the
// assistant reply. The transcript lives in the session store under a 30
// minute sliding window; a dead store or API failure yields the static
// fallback without losing the user's turn.
func (c *Client) Chat(ctx context.Context, sessionID, message string) string {
	turns := c.loadTranscript(ctx, sessionID)
	turns = append(turns, chatTurn{Role: "user", Text: message})

	reply := chatFallbackMsg
	if c.enabled() {
		contents := make([]content, 0, len(turns)+1)
		contents = append(contents, content{
			Role:  "user",
			Parts: []part{{Text: chatSystemPrompt}},
		})
		for _, t := range turns {
			role := "user"
			if t.Role == "model" {
				role = "model"
			}
			contents = append(contents, content{
				Role:  role,
				Parts: []part{{Text: t.Text}},
			})
		}

		if text, err := c.generate(ctx, contents); err != nil {
			c.log.Warn("chat call failed, using fallback",
				zap.String("session_id", sessionID),
				zap.Error(err),
			)
		} else {
			reply = strings.TrimSpace(text)
		}
	}

	turns = append(turns, chatTurn{Role: "model", Text: reply})
	if len(turns) > chatMaxTurns {
		turns = turns[len(turns)-chatMaxTurns:]
	}
	c.saveTranscript(ctx, sessionID, turns)

	return reply
}

func (c *Client) loadTranscript(ctx context.Context, sessionID string) []chatTurn {
	raw, err := c.store.Get(ctx, chatKey(sessionID))
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			c.log.Warn("chat transcript load failed", zap.Error(err))
		}
		return nil
	}

	var turns []chatTurn
	if err := json.Unmarshal([]byte(raw), &turns); err != nil {
		return nil
	}
	return turns
}

func (c *Client) saveTranscript(ctx context.Context, sessionID string, turns []chatTurn) {
	raw, err := json.Marshal(turns)
	if err != nil {
		return
	}
	if err := c.store.Set(ctx, chatKey(sessionID), string(raw), chatTTL); err != nil {
		c.log.Warn("chat transcript save failed", zap.Error(err))
	}
}

func chatKey(sessionID string) string {
	return "chat:" + sessionID
}
