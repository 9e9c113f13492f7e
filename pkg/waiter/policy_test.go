package waiter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/pkg/llm"
)

type fakeLLM struct {
	response   string
	err        error
	lastPrompt string
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if len(history) > 0 {
		f.lastPrompt = history[len(history)-1].Content
	}
	return f.response, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestDecide_ValidJSON(t *testing.T) {
	fake := &fakeLLM{response: `{"intent": "add_to_cart", "reply": "Adding it now!", "items": ["Paneer Tikka"]}`}
	policy := NewPolicy(fake, nopLogger{})

	decision, err := policy.Decide(context.Background(), "Spice Villa", "menu", "add paneer tikka", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, IntentAddToCart, decision.Intent)
	assert.Equal(t, "Adding it now!", decision.Reply)
	assert.Equal(t, []string{"Paneer Tikka"}, decision.Items)
}

func TestDecide_JSONWrappedInCodeFence(t *testing.T) {
	fake := &fakeLLM{response: "```json\n{\"intent\": \"greet\", \"reply\": \"Hello!\", \"items\": []}\n```"}
	policy := NewPolicy(fake, nopLogger{})

	decision, err := policy.Decide(context.Background(), "Spice Villa", "menu", "hi", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, IntentGreet, decision.Intent)
	assert.Equal(t, "Hello!", decision.Reply)
}

func TestDecide_MalformedOutputDegradesToChat(t *testing.T) {
	cases := []string{
		"Sure, I'd recommend the Paneer Tikka!",
		"{not valid json",
		"",
		"[1, 2, 3]",
	}

	for _, raw := range cases {
		fake := &fakeLLM{response: raw}
		policy := NewPolicy(fake, nopLogger{})

		decision, err := policy.Decide(context.Background(), "Spice Villa", "menu", "anything", nil, nil)
		require.NoError(t, err)

		assert.Equal(t, IntentChat, decision.Intent)
		assert.Empty(t, decision.Items)
	}
}

func TestDecide_MalformedOutputKeepsRawReply(t *testing.T) {
	fake := &fakeLLM{response: "Sure, the Chicken Soup is lovely."}
	policy := NewPolicy(fake, nopLogger{})

	decision, err := policy.Decide(context.Background(), "Spice Villa", "menu", "soup?", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Sure, the Chicken Soup is lovely.", decision.Reply)
}

func TestDecide_UnknownIntentNormalized(t *testing.T) {
	fake := &fakeLLM{response: `{"intent": "ORDER_PIZZA", "reply": "ok", "items": []}`}
	policy := NewPolicy(fake, nopLogger{})

	decision, err := policy.Decide(context.Background(), "Spice Villa", "menu", "pizza", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, IntentUnknown, decision.Intent)
}

func TestDecide_IntentCaseInsensitive(t *testing.T) {
	fake := &fakeLLM{response: `{"intent": "Confirm_Order", "reply": "ok", "items": []}`}
	policy := NewPolicy(fake, nopLogger{})

	decision, err := policy.Decide(context.Background(), "Spice Villa", "menu", "place it", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, IntentConfirmOrder, decision.Intent)
}

func TestDecide_TransportErrorSurfaces(t *testing.T) {
	fake := &fakeLLM{err: errors.New("connection refused")}
	policy := NewPolicy(fake, nopLogger{})

	_, err := policy.Decide(context.Background(), "Spice Villa", "menu", "hello", nil, nil)
	assert.Error(t, err)
}

func TestDecide_PromptContainsCartAndHistoryWindow(t *testing.T) {
	fake := &fakeLLM{response: `{"intent": "chat", "reply": "ok", "items": []}`}
	policy := NewPolicy(fake, nopLogger{})

	history := []entity.Turn{
		{Role: "user", Content: "turn one"},
		{Role: "assistant", Content: "turn two"},
		{Role: "user", Content: "turn three"},
		{Role: "assistant", Content: "turn four"},
		{Role: "user", Content: "turn five"},
		{Role: "assistant", Content: "turn six"},
		{Role: "user", Content: "turn seven"},
	}
	cart := []entity.CartEntry{
		{Name: "Paneer Tikka", Price: 150, Qty: 1},
		{Name: "Chicken Soup", Price: 120, Qty: 2},
	}

	_, err := policy.Decide(context.Background(), "Spice Villa", "the menu block", "what's in my cart?", history, cart)
	require.NoError(t, err)

	assert.Contains(t, fake.lastPrompt, "Paneer Tikka (x1), Chicken Soup (x2)")
	assert.Contains(t, fake.lastPrompt, "the menu block")
	assert.Contains(t, fake.lastPrompt, "what's in my cart?")

	// Only the trailing five turns are rendered.
	assert.NotContains(t, fake.lastPrompt, "turn one")
	assert.NotContains(t, fake.lastPrompt, "turn two")
	assert.Contains(t, fake.lastPrompt, "turn three")
	assert.Contains(t, fake.lastPrompt, "turn seven")
}

func TestDecide_EmptyCartRenderedAsEmpty(t *testing.T) {
	fake := &fakeLLM{response: `{"intent": "chat", "reply": "ok", "items": []}`}
	policy := NewPolicy(fake, nopLogger{})

	_, err := policy.Decide(context.Background(), "Spice Villa", "menu", "hi", nil, nil)
	require.NoError(t, err)

	assert.Contains(t, fake.lastPrompt, "Current cart: empty")
}
