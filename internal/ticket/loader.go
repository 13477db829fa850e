package ticket

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"senacheck/internal/domain"
	"senacheck/internal/validation"
)

// Loader reads and normalizes the raw tickets file into Games.
type Loader interface {
	Load(path string) ([]domain.Game, error)
	Parse(r io.Reader) ([]domain.Game, error)
}

type ticketLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &ticketLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads the tickets JSON file, validates it against the tickets schema,
// and normalizes it into Games in file order.
func (l *ticketLoader) Load(path string) ([]domain.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrLoadFailed, ErrMsgReadTicketsFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, TicketsSchemaPath); err != nil {
		return nil, fmt.Errorf("%w: %s for %s: %v", domain.ErrLoadFailed, ErrMsgSchemaFailed, path, err)
	}

	return l.Parse(bytes.NewReader(data))
}

// Parse decodes the raw ticket collection and expands it into Games.
// A token-stream decoder is used instead of map unmarshaling so the file's
// entry order is preserved; that order defines the canonical load order.
//
// Entry rules:
//   - the CommentKey entry is skipped
//   - a flat array is a single bet; the Game keeps the ticket id
//   - an array of arrays is a multi-bet; Games get ids "<ticketID>-<n>" (1-based)
//   - malformed bets are collected across the whole file and reported together
func (l *ticketLoader) Parse(r io.Reader) ([]domain.Game, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrLoadFailed, ErrMsgParseTicketsFailed, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: %s", domain.ErrLoadFailed, ErrMsgNotAnObject)
	}

	var (
		games    []domain.Game
		problems []string
	)
	seen := make(map[string]bool)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrLoadFailed, ErrMsgParseTicketsFailed, err)
		}
		ticketID, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrLoadFailed, ErrMsgNotAnObject)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrLoadFailed, ErrMsgParseTicketsFailed, err)
		}

		if ticketID == CommentKey {
			continue
		}

		if seen[ticketID] {
			return nil, fmt.Errorf("%w: '%s'", domain.ErrDuplicateTicketID, ticketID)
		}
		seen[ticketID] = true

		entryGames, entryProblems := expandTicket(ticketID, raw)
		games = append(games, entryGames...)
		problems = append(problems, entryProblems...)
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMalformedGame, strings.Join(problems, "; "))
	}

	if len(games) == 0 {
		return nil, domain.ErrNoTicketsDefined
	}

	return games, nil
}

// expandTicket turns one raw ticket entry into its Games. The value's shape
// decides the split: an array whose first element is itself an array is a
// multi-bet, anything else is treated as a single bet.
func expandTicket(ticketID string, raw json.RawMessage) ([]domain.Game, []string) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, []string{fmt.Sprintf(ErrFmtEntryNotArray, ticketID)}
	}
	if len(items) == 0 {
		return nil, []string{fmt.Sprintf(ErrFmtEntryEmpty, ticketID)}
	}

	if !isArray(items[0]) {
		// Single bet: one Game keeping the ticket id
		numbers, err := decodeBet(raw)
		if err != nil {
			return nil, []string{fmt.Sprintf(ErrFmtBadBet, ticketID, err)}
		}
		return []domain.Game{{ID: ticketID, SourceID: ticketID, Numbers: numbers}}, nil
	}

	// Multi-bet: one Game per inner array, order preserved
	games := make([]domain.Game, 0, len(items))
	var problems []string
	for i, item := range items {
		gameID := fmt.Sprintf("%s-%d", ticketID, i+1)
		numbers, err := decodeBet(item)
		if err != nil {
			problems = append(problems, fmt.Sprintf(ErrFmtBadBet, gameID, err))
			continue
		}
		games = append(games, domain.Game{ID: gameID, SourceID: ticketID, Numbers: numbers})
	}
	return games, problems
}

// decodeBet strictly decodes one bet: exactly NumbersPerGame distinct
// integers in [MinNumber, MaxNumber]. Floats, strings, and nulls are
// rejected rather than coerced.
func decodeBet(raw json.RawMessage) ([]int, error) {
	var values []json.Number
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, errors.New(ErrMsgBetNotNumbers)
	}

	if len(values) != domain.NumbersPerGame {
		return nil, fmt.Errorf(ErrFmtBetWrongCount, domain.NumbersPerGame, len(values))
	}

	numbers := make([]int, 0, domain.NumbersPerGame)
	seen := make(map[int]bool, domain.NumbersPerGame)
	for _, v := range values {
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return nil, fmt.Errorf(ErrFmtBetNotInteger, v.String())
		}
		if n < domain.MinNumber || n > domain.MaxNumber {
			return nil, fmt.Errorf(ErrFmtBetOutOfRange, n, domain.MinNumber, domain.MaxNumber)
		}
		if seen[n] {
			return nil, fmt.Errorf(ErrFmtBetRepeats, n)
		}
		seen[n] = true
		numbers = append(numbers, n)
	}

	return numbers, nil
}

// isArray reports whether the raw value's first token opens a JSON array.
func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
