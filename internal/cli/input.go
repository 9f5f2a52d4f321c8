// Package cli handles the interactive loop: passages typed on a line are learned, single words are completed.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordlearn/internal/utils"
	"github.com/bastiangx/wordlearn/pkg/config"
	"github.com/bastiangx/wordlearn/pkg/suggest"
	"github.com/charmbracelet/log"
)

// ErrExitRequested is returned by HandleLine when the exit sentinel was typed
var ErrExitRequested = errors.New("exit requested")

const (
	msgEmptyInput    = "Error: empty input provided."
	msgEmptyPassage  = "Error: empty passage provided."
	msgEmptyFragment = "Error: empty fragment provided."
	msgNeedMoreWords = "Error: more than one word is needed for training."
	msgNotTrained    = "Error: You must train the application by entering a passage first."
	msgNoSuggestions = "No suggestions found."
	msgGoodbye       = "Goodbye!"
	suggestionsLabel = "Suggestion(s): "
)

// InputHandler reads lines from in and routes them to the provider:
// one word is a lookup, more than one is a training passage.
// All user-facing text goes to out; diagnostics go to the logger.
type InputHandler struct {
	provider     suggest.IProvider
	in           *bufio.Reader
	out          io.Writer
	prompt       string
	exitSentinel string
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with the cli config
func NewInputHandler(provider suggest.IProvider, in io.Reader, out io.Writer, cfg config.CliConfig) *InputHandler {
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = config.DefaultPrompt
	}
	sentinel := cfg.ExitSentinel
	if sentinel == "" {
		sentinel = config.DefaultExitSentinel
	}
	return &InputHandler{
		provider:     provider,
		in:           bufio.NewReader(in),
		out:          out,
		prompt:       prompt,
		exitSentinel: sentinel,
	}
}

// Start prints the prompt and handles lines until the exit sentinel or end
// of input, both of which return nil. Read failures are returned.
func (h *InputHandler) Start() error {
	h.println(h.prompt)

	for {
		line, err := h.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading input: %w", err)
		}

		// a final line without a trailing newline still counts
		if line != "" {
			if handleErr := h.HandleLine(line); errors.Is(handleErr, ErrExitRequested) {
				return nil
			}
		}

		if errors.Is(err, io.EOF) {
			log.Debug("End of input", "requests", h.requestCount)
			return nil
		}
	}
}

// HandleLine processes a single line of input and reprints the prompt.
// It returns ErrExitRequested after printing the goodbye message.
func (h *InputHandler) HandleLine(line string) error {
	h.requestCount++
	trimmed := strings.TrimSpace(line)

	switch {
	case utils.IsBlank(trimmed):
		h.println(msgEmptyInput)
	case trimmed == h.exitSentinel:
		h.println(msgGoodbye)
		return ErrExitRequested
	default:
		words := utils.Tokens(trimmed)
		if len(words) == 1 {
			h.handleLookup(words[0])
		} else {
			h.handleTrain(line)
		}
	}

	h.println(h.prompt)
	return nil
}

func (h *InputHandler) handleLookup(fragment string) {
	start := time.Now()
	candidates, err := h.provider.Lookup(fragment)
	log.Debugf("Took [ %v ] for fragment '%s'", time.Since(start), fragment)

	switch {
	case err == nil:
		h.println(suggestionsLabel + suggest.FormatCandidates(candidates))
	case errors.Is(err, suggest.ErrNotYetTrained):
		h.println(msgNotTrained)
	case errors.Is(err, suggest.ErrNotFound):
		h.println(msgNoSuggestions)
	case errors.Is(err, suggest.ErrInvalidInput):
		h.println(msgEmptyFragment)
	default:
		log.Errorf("Lookup failed for fragment '%s': %v", fragment, err)
		h.println(msgNoSuggestions)
	}
}

func (h *InputHandler) handleTrain(passage string) {
	err := h.provider.Train(passage)
	switch {
	case err == nil:
		log.Debug("Trained passage", "stats", h.provider.Stats())
	case errors.Is(err, suggest.ErrInsufficientInput):
		h.println(msgNeedMoreWords)
	case errors.Is(err, suggest.ErrInvalidInput):
		h.println(msgEmptyPassage)
	default:
		log.Errorf("Training failed: %v", err)
	}
}

func (h *InputHandler) println(msg string) {
	if _, err := fmt.Fprintln(h.out, msg); err != nil {
		log.Errorf("Writing output: %v", err)
	}
}
