package providers

import (
	"strings"
	"testing"
)

func TestSearchServicesQueryWithoutTerm(t *testing.T) {
	query, args := searchServicesQuery("")

	if len(args) != 0 {
		t.Fatalf("expected no arguments, got %v", args)
	}
	if strings.Contains(query, "WHERE") {
		t.Fatalf("unfiltered listing must not carry a WHERE clause:\n%s", query)
	}
	if !strings.Contains(query, "ORDER BY sn.id") {
		t.Fatalf("listing must be ordered by ascending id:\n%s", query)
	}
}

func TestSearchServicesQueryBindsTerm(t *testing.T) {
	term := `divorce'; DROP TABLE service_names; --`
	query, args := searchServicesQuery(term)

	if len(args) != 1 || args[0] != "%"+term+"%" {
		t.Fatalf("expected the wildcarded term as the single argument, got %v", args)
	}
	// The raw term never appears in the statement text.
	if strings.Contains(query, "divorce") {
		t.Fatalf("term leaked into the statement:\n%s", query)
	}
	if got := strings.Count(query, "ILIKE $1"); got != 3 {
		t.Fatalf("expected name, title and description matched against $1, found %d", got)
	}
	if !strings.Contains(query, "ORDER BY sn.id") {
		t.Fatalf("filtered listing must be ordered by ascending id:\n%s", query)
	}
}
