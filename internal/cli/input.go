// Package cli handles cmd line input for DBG and testing lookups interactively
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lokchuen/congkit/pkg/congkit"
)

// InputHandler processes user input from stdin and routes each line to
// the matching query: CJK input looks up codes, code patterns search for
// characters, a trailing '?' asks for completions.
type InputHandler struct {
	db           *congkit.DB
	limit        int
	showRadicals bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(db *congkit.DB, limit int, showRadicals bool) *InputHandler {
	return &InputHandler{
		db:           db,
		limit:        limit,
		showRadicals: showRadicals,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("Congkit CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("characters -> codes, code pattern ('*' wildcard) -> characters,")
	log.Print("trailing '?' -> code completion (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// isCodeQuery reports whether every rune could be part of a code pattern.
func isCodeQuery(input string) bool {
	for _, r := range input {
		if (r < 'a' || r > 'z') && r != '*' {
			return false
		}
	}
	return true
}

func (h *InputHandler) handleInput(input string) {
	switch {
	case strings.HasSuffix(input, "?") && isCodeQuery(strings.TrimSuffix(input, "?")):
		h.handleComplete(strings.TrimSuffix(input, "?"))
	case isCodeQuery(input):
		h.handlePattern(input)
	default:
		h.handleCharacters(input)
	}
}

// handlePattern searches the table for characters matching a code pattern.
func (h *InputHandler) handlePattern(pattern string) {
	start := time.Now()
	chars, err := h.db.Characters(pattern)
	if err != nil {
		log.Errorf("Bad pattern '%s': %v", pattern, err)
		return
	}
	log.Debugf("Took [ %v ] for pattern '%s'", time.Since(start), pattern)

	if len(chars) == 0 {
		log.Warnf("No characters found for pattern: '%s'", pattern)
		return
	}
	if h.limit > 0 && len(chars) > h.limit {
		chars = chars[:h.limit]
	}
	log.Printf("Found %d characters for pattern '%s':", len(chars), pattern)
	for i, c := range chars {
		code, _ := h.db.Code(c)
		h.printCandidate(i, string(c), code)
	}
}

// handleComplete lists codes starting with the given prefix.
func (h *InputHandler) handleComplete(prefix string) {
	start := time.Now()
	matches := h.db.Complete(prefix, h.limit)
	log.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)

	if len(matches) == 0 {
		log.Warnf("No completions found for prefix: '%s'", prefix)
		return
	}
	log.Printf("Found %d completions for prefix '%s':", len(matches), prefix)
	for i, m := range matches {
		h.printCandidate(i, string(m.Char), m.Code)
	}
}

// handleCharacters looks up the code for each rune of the input.
func (h *InputHandler) handleCharacters(input string) {
	start := time.Now()
	results := h.db.Codes([]rune(input))
	log.Debugf("Took [ %v ] for input '%s'", time.Since(start), input)

	for _, r := range results {
		if !r.Found {
			log.Warnf("Not in table: '%s'", string(r.Char))
			continue
		}
		h.printCandidate(-1, string(r.Char), r.Code)
	}
}

func (h *InputHandler) printCandidate(i int, char, code string) {
	clChar := fmt.Sprintf("\033[38;5;75m%s\033[0m", char)
	rendered := code
	if h.showRadicals {
		rendered = fmt.Sprintf("%s (%s)", code, h.db.Radicals(code))
	}
	if i < 0 {
		log.Printf("%s  %s", clChar, rendered)
		return
	}
	log.Printf("%2d. %s  %s", i+1, clChar, rendered)
}
