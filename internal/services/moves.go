package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Acelogic/Maginator/internal/models"
)

var (
	moveSplitRe = regexp.MustCompile(`[\n,;]+`)
	moveEntryRe = regexp.MustCompile(`^([A-Za-z.\-]+)\s*[:=]\s*([+-]?\d+(?:\.\d+)?)\s*%?$`)
)

// ParseMoves parses freeform move text like "NVDA: 5, TSLA: -3.5" into a
// move set. Entries are separated by newlines, commas, or semicolons;
// each is SYMBOL:PCT or SYMBOL=PCT with an optional trailing percent
// sign. Symbols are uppercased, so "all: 2" sets the default move.
func ParseMoves(text string) (models.MoveSet, error) {
	moves := make(models.MoveSet)
	for _, chunk := range moveSplitRe.Split(text, -1) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		m := moveEntryRe.FindStringSubmatch(chunk)
		if m == nil {
			return nil, &models.ValidationError{
				Field:   "moves_text",
				Message: fmt.Sprintf("cannot parse move entry %q", chunk),
			}
		}
		pct, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil, &models.ValidationError{
				Field:   "moves_text",
				Message: fmt.Sprintf("bad number in move entry %q", chunk),
			}
		}
		moves[strings.ToUpper(m[1])] = pct
	}
	return moves, nil
}

// AutoFillMoves builds a move set from live quote change percentages for
// the given symbols. Symbols without a quote are left unset so they fall
// through to the ALL default or zero.
func AutoFillMoves(book *models.QuoteBook, symbols []string) models.MoveSet {
	moves := make(models.MoveSet)
	if book == nil {
		return moves
	}
	for _, sym := range symbols {
		if q, ok := book.Quotes[sym]; ok {
			moves[sym] = q.ChangePct
		}
	}
	return moves
}

// MergeMoves overlays move sets left to right; later sets win on
// conflicting keys.
func MergeMoves(layers ...models.MoveSet) models.MoveSet {
	merged := make(models.MoveSet)
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}

// NormalizeMoveKeys uppercases and trims the keys of a raw move map, as
// JSON clients tend to send lowercase tickers.
func NormalizeMoveKeys(raw map[string]float64) models.MoveSet {
	moves := make(models.MoveSet, len(raw))
	for k, v := range raw {
		moves[strings.ToUpper(strings.TrimSpace(k))] = v
	}
	return moves
}
