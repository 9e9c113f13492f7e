package waiter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sajjad006/ardine-backend/internal/constant"
	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/pkg/logger"
	"github.com/sajjad006/ardine-backend/pkg/llm"
)

const systemInstruction = "You are a helpful AI waiter."

// Policy turns one user utterance plus conversation state into a
// structured Decision via the generative model.
type Policy struct {
	llm llm.LLMProvider
	log logger.ILogger
}

func NewPolicy(provider llm.LLMProvider, log logger.ILogger) *Policy {
	return &Policy{
		llm: provider,
		log: log,
	}
}

// Decide builds the instruction prompt, calls the model, and decodes its
// output. A transport failure is returned as an error; malformed model
// output is not an error and degrades to a chat-intent Decision carrying
// the raw text.
func (p *Policy) Decide(ctx context.Context, restaurantName, menuContext, utterance string, history []entity.Turn, cart []entity.CartEntry) (*Decision, error) {
	prompt := buildPrompt(restaurantName, menuContext, utterance, history, cart)

	raw, err := p.llm.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: prompt},
		},
		llm.WithTemperature(0.4),
		llm.WithMaxTokens(500),
	)
	if err != nil {
		return nil, fmt.Errorf("llm chat: %w", err)
	}

	decision := p.parseDecision(raw)
	return decision, nil
}

func buildPrompt(restaurantName, menuContext, utterance string, history []entity.Turn, cart []entity.CartEntry) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are a friendly and knowledgeable virtual waiter for the restaurant %q.\n\n", restaurantName)

	sb.WriteString("Conversation so far:\n")
	sb.WriteString(renderHistory(history))
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "Current cart: %s\n\n", renderCart(cart))

	sb.WriteString("Menu Context:\n")
	sb.WriteString(menuContext)
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "Customer Query:\n%q\n\n", utterance)

	sb.WriteString(`Classify the customer's query into exactly one of these intents:
- chat: small talk or anything not covered below
- describe_dish: asking what a specific dish is
- add_to_cart: asking to add one or more dishes to the cart
- remove_from_cart: asking to remove a dish from the cart
- update_quantity: asking to change the quantity of a cart item
- check_cart: asking what is currently in the cart
- confirm_order: asking to place or finalize the order
- recommend_dish: asking for suggestions
- ask_calories: asking about calories of a dish
- ask_ingredients: asking what a dish is made of
- ask_price: asking what a dish costs
- ask_category: asking which category a dish belongs to
- restaurant_info: asking about the restaurant itself
- greet: a greeting
- goodbye: a farewell
- unknown: the query cannot be understood

Guidelines:
- Recommend dishes that match the customer's preferences.
- Mention dish name, price, and calories (if available).
- Keep responses short, conversational, and natural.
- Never invent menu items not in the context.
- Offer at most 2-3 recommendations.
- If the query implies more than one intent, pick the single dominant one.

Respond with a single JSON object and nothing else, with exactly these three fields:
{"intent": "<one of the intents above>", "reply": "<your reply to the customer>", "items": ["<dish names the customer referenced, if any>"]}`)

	return sb.String()
}

func renderHistory(history []entity.Turn) string {
	if len(history) == 0 {
		return "(no previous messages)"
	}

	start := 0
	if len(history) > constant.HistoryWindow {
		start = len(history) - constant.HistoryWindow
	}

	lines := make([]string, 0, len(history)-start)
	for _, turn := range history[start:] {
		lines = append(lines, fmt.Sprintf("%s: %s", turn.Role, turn.Content))
	}
	return strings.Join(lines, "\n")
}

func renderCart(cart []entity.CartEntry) string {
	if len(cart) == 0 {
		return "empty"
	}

	parts := make([]string, 0, len(cart))
	for _, entry := range cart {
		parts = append(parts, fmt.Sprintf("%s (x%d)", entry.Name, entry.Qty))
	}
	return strings.Join(parts, ", ")
}

// parseDecision decodes the model's raw text. Models wrap JSON in code
// fences or prose often enough that we cut from the first '{' to the
// last '}' before decoding. Anything undecodable becomes a plain chat
// reply carrying the raw text.
func (p *Policy) parseDecision(raw string) *Decision {
	candidate := strings.TrimSpace(raw)
	candidate = strings.TrimPrefix(candidate, "```json")
	candidate = strings.TrimPrefix(candidate, "```")
	candidate = strings.TrimSuffix(candidate, "```")

	start := strings.Index(candidate, "{")
	end := strings.LastIndex(candidate, "}")
	if start == -1 || end == -1 || end < start {
		return p.fallbackDecision(raw)
	}

	var decision Decision
	if err := json.Unmarshal([]byte(candidate[start:end+1]), &decision); err != nil {
		return p.fallbackDecision(raw)
	}

	decision.Intent = normalizeIntent(decision.Intent)
	if decision.Items == nil {
		decision.Items = []string{}
	}
	return &decision
}

func (p *Policy) fallbackDecision(raw string) *Decision {
	p.log.Warn("Policy", "Model output was not valid JSON, degrading to chat intent", map[string]interface{}{
		"raw_length": len(raw),
	})
	return &Decision{
		Intent: IntentChat,
		Reply:  strings.TrimSpace(raw),
		Items:  []string{},
	}
}
