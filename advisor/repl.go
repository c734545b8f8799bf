package advisor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/hanifw/tabunganku"
)

const prompt = "tabungan> "

// Run starts an interactive chat session with the assistant, reading
// questions from r and writing answers to w. Optional prompts are consumed
// before reading from r, which makes one-shot questions and tests easy.
//
// Each question is answered against a fresh summary from summarize, so
// answers track the ledger even if it changes during the session. An
// unavailable assistant degrades to the apology string; only a cancelled
// context or a broken reader ends the session with an error.
func (a *Advisor) Run(ctx context.Context, w io.Writer, r io.Reader, summarize func() *tabunganku.Summary, prompts ...string) error {
	reader := bufio.NewReader(r)
	fmt.Fprintln(w, "Selamat datang di asisten cerdas TabunganKu. Type 'bye' to exit.")

	for {
		fmt.Fprint(w, prompt)

		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(w, input)
		} else {
			var err error
			input, err = reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, summarize(), input)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, ErrUnavailable) {
				log.Printf("advisor degraded: %v", err)
			}
		}
		fmt.Fprintln(w, answer)
	}
}
