// Package advisor is the client for the AI advisory assistant. It hands the
// model a bounded summary of the ledger together with the user's question and
// expects displayable text back; when the model cannot be reached the caller
// gets a fixed apology string instead of a hard failure.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hanifw/tabunganku"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// ErrUnavailable indicates the assistant could not be reached or timed out.
// It always travels alongside a usable fallback string, never alone.
var ErrUnavailable = errors.New("advisory assistant unavailable")

// Fallback strings shown to the user when the assistant degrades.
const (
	fallbackAnswer = "Maaf, terjadi kesalahan saat menghubungi asisten pintar. Pastikan API Key valid."
	emptyAnswer    = "Maaf, saya tidak dapat menganalisis data saat ini."
)

const systemInstruction = `
You are an intelligent financial assistant for a school savings application called "TabunganKu".

Each user message starts with the current school financial data context as JSON, followed by the user's query.

Please answer the user's query based on the data provided.
- Be encouraging and educational about saving money.
- If asked about specific students in the "topSavers" list, mention them.
- Provide insights on trends if asked.
- Keep the answer concise (under 150 words) and formatted nicely.
- Use Indonesian language (Bahasa Indonesia).
`

// Advisor is a chat session with the assistant.
type Advisor struct {
	client *genai.Client
	chat   *genai.Chat

	// Timeout bounds each attempt to reach the assistant.
	Timeout time.Duration
}

// New creates an Advisor on an initialized Gemini client.
func New(client *genai.Client) *Advisor {
	return &Advisor{client: client, Timeout: 30 * time.Second}
}

// Start creates the chat session.
func (a *Advisor) Start(ctx context.Context) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	chat, err := a.client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	a.chat = chat
	return nil
}

// Ask sends the bounded ledger summary and the raw user query to the
// assistant and returns its text response.
//
// Each attempt is bounded by Timeout and a failed attempt is retried once.
// When both attempts fail Ask still returns a displayable apology string,
// with the error (wrapping ErrUnavailable) carrying the diagnostics. The
// summary is an already-copied snapshot, so no ledger lock is held while the
// call is in flight.
func (a *Advisor) Ask(ctx context.Context, summary *tabunganku.Summary, query string) (string, error) {
	if a.chat == nil {
		if err := a.Start(ctx); err != nil {
			return fallbackAnswer, err
		}
	}

	dataContext, err := json.Marshal(summary)
	if err != nil {
		return fallbackAnswer, fmt.Errorf("%w: could not marshal summary: %v", ErrUnavailable, err)
	}

	prompt := fmt.Sprintf("Here is the current school financial data context (JSON):\n%s\n\nUser Query: %q", dataContext, query)

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		text, err := a.send(ctx, prompt)
		if err == nil {
			if text == "" {
				return emptyAnswer, nil
			}
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return fallbackAnswer, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

func (a *Advisor) send(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.Timeout)
	defer cancel()

	resp, err := a.chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
