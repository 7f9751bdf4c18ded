package player

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// searchQuery is the parsed form of the free-text player search
type searchQuery struct {
	text      string // folded, empty means match everything
	jersey    int
	hasJersey bool
}

func parseSearch(raw string) searchQuery {
	raw = strings.TrimSpace(raw)
	q := searchQuery{text: fold(raw)}
	if n, err := parseJersey(raw); err == nil {
		q.jersey = n
		q.hasJersey = true
	}
	return q
}

func parseJersey(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedSearch, raw)
	}
	return n, nil
}

// matches is the union of the name, position and jersey predicates
func (q searchQuery) matches(p models.Player) bool {
	if q.text == "" {
		return true
	}
	if strings.Contains(fold(p.Name), q.text) || strings.Contains(fold(p.Position), q.text) {
		return true
	}
	return q.hasJersey && p.JerseyNumber == q.jersey
}

// fold lowercases s and strips combining marks so "José" and "jose" compare equal.
// Transformers and casers keep state, so a fresh chain is built per call.
func fold(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}

// filterPlayers keeps players accepted by keep, drops repeated ids and sorts by jersey.
// The sort is stable so equal jersey numbers keep their input order.
func filterPlayers(players []models.Player, keep func(models.Player) bool) []models.Player {
	out := make([]models.Player, 0, len(players))
	seen := make(map[uuid.UUID]struct{}, len(players))
	for _, p := range players {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		if !keep(p) {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	sortByJersey(out)
	return out
}

func sortByJersey(players []models.Player) {
	slices.SortStableFunc(players, func(a, b models.Player) int {
		return cmp.Compare(a.JerseyNumber, b.JerseyNumber)
	})
}
