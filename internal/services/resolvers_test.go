package services

import (
	"math"
	"testing"

	"github.com/Acelogic/Maginator/internal/models"
	"github.com/Acelogic/Maginator/internal/roundhill"
)

// magsRows returns scraped rows shaped like the real fund page: each of the
// seven names appears as an equity line plus one or more swap lines, with
// cash-like rows mixed in. Weights are fractions as they leave the parser.
func magsRows() []roundhill.Row {
	return []roundhill.Row{
		{Name: "NVIDIA CORP SWAP", Weight: 0.0886},
		{Name: "FIRST AMERICAN GOVERNMENT OBLIGS X", Weight: 0.0721},
		{Name: "ALPHABET INC SWAP GS", Weight: 0.0589},
		{Name: "AMAZON.COM INC SWAP", Weight: 0.0576},
		{Name: "AMAZON.COM INC", Weight: 0.0562},
		{Name: "ALPHABET INC-CL A SWAP", Weight: 0.0534},
		{Name: "NVIDIA CORP", Weight: 0.0533},
		{Name: "MICROSOFT CORP SWAP", Weight: 0.0532},
		{Name: "MICROSOFT CORP", Weight: 0.0526},
		{Name: "TESLA INC", Weight: 0.0522},
		{Name: "META PLATFORMS INC CLASS A", Weight: 0.0513},
		{Name: "META PLATFORMS INC-CLASS A SWAP", Weight: 0.0512},
		{Name: "APPLE INC", Weight: 0.0503},
		{Name: "TESLA INC SWAP", Weight: 0.0445},
		{Name: "APPLE INC SWAP", Weight: 0.0442},
		{Name: "TESLA INC SWAP GS", Weight: 0.0423},
		{Name: "ALPHABET INC CLASS A", Weight: 0.0415},
		{Name: "APPLE INC SWAP GS", Weight: 0.0409},
		{Name: "AMAZON INC SWAP GS", Weight: 0.0358},
		{Name: "MICROSOFT CORP SWAP GS", Weight: 0.0344},
		{Name: "META PLATFORMS INC SWAP GS", Weight: 0.0342},
		{Name: "US DOLLARS", Weight: 0.0053},
	}
}

func TestResolveHoldingRows_MAGSData(t *testing.T) {
	resolved, unresolved := ResolveHoldingRows(magsRows())

	if len(resolved) != 7 {
		t.Fatalf("expected 7 resolved holdings, got %d", len(resolved))
	}

	resolvedMap := make(map[string]float64)
	for _, h := range resolved {
		resolvedMap[h.Symbol] = h.Weight
	}

	// NVDA accumulates its swap 0.0886 + equity 0.0533 = 0.1419
	assertClose(t, "NVDA", resolvedMap["NVDA"], 0.1419, 0.0001)

	// AMZN: 0.0576 + 0.0562 + 0.0358 = 0.1496
	// "AMAZON.COM INC" and "AMAZON INC SWAP GS" both normalize to
	// "AMAZON INC" once the .COM is stripped.
	assertClose(t, "AMZN", resolvedMap["AMZN"], 0.1496, 0.0001)

	// GOOGL: 0.0589 + 0.0534 + 0.0415 = 0.1538
	// "-CL A" and " CLASS A" suffixes both come off before matching.
	assertClose(t, "GOOGL", resolvedMap["GOOGL"], 0.1538, 0.0001)

	// MSFT: 0.0532 + 0.0526 + 0.0344 = 0.1402
	assertClose(t, "MSFT", resolvedMap["MSFT"], 0.1402, 0.0001)

	// TSLA: 0.0522 + 0.0445 + 0.0423 = 0.1390
	assertClose(t, "TSLA", resolvedMap["TSLA"], 0.1390, 0.0001)

	// META: 0.0513 + 0.0512 + 0.0342 = 0.1367
	assertClose(t, "META", resolvedMap["META"], 0.1367, 0.0001)

	// AAPL: 0.0503 + 0.0442 + 0.0409 = 0.1354
	assertClose(t, "AAPL", resolvedMap["AAPL"], 0.1354, 0.0001)

	// Cash-like rows stay unresolved for the caller to flag.
	if len(unresolved) != 2 {
		t.Fatalf("expected 2 unresolved rows, got %d", len(unresolved))
	}
	unresolvedNames := make(map[string]bool)
	for _, r := range unresolved {
		unresolvedNames[r.Name] = true
	}
	if !unresolvedNames["FIRST AMERICAN GOVERNMENT OBLIGS X"] {
		t.Error("expected the treasury fund in unresolved")
	}
	if !unresolvedNames["US DOLLARS"] {
		t.Error("expected US DOLLARS in unresolved")
	}
}

func TestResolveHoldingRows_FirstSeenOrderAndName(t *testing.T) {
	resolved, _ := ResolveHoldingRows(magsRows())

	// Order follows first appearance on the page, and the display name is
	// the first row seen for the ticker.
	wantOrder := []string{"NVDA", "GOOGL", "AMZN", "MSFT", "TSLA", "META", "AAPL"}
	for i, want := range wantOrder {
		if resolved[i].Symbol != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, resolved[i].Symbol)
		}
	}
	if resolved[0].Name != "NVIDIA CORP SWAP" {
		t.Errorf("expected first-seen display name, got %q", resolved[0].Name)
	}
}

func TestResolveHoldingRows_AccumulatesShares(t *testing.T) {
	rows := []roundhill.Row{
		{Name: "NVIDIA CORP", Weight: 0.05, Shares: 1000},
		{Name: "NVIDIA CORP SWAP", Weight: 0.09, Shares: 250},
	}

	resolved, _ := ResolveHoldingRows(rows)
	if len(resolved) != 1 {
		t.Fatalf("expected 1 holding, got %d", len(resolved))
	}
	assertClose(t, "NVDA weight", resolved[0].Weight, 0.14, 0.0001)
	assertClose(t, "NVDA shares", resolved[0].Shares, 1250, 0.0001)
}

func TestResolveHoldingName(t *testing.T) {
	cases := []struct {
		name   string
		ticker string
		ok     bool
	}{
		{"NVIDIA CORP", "NVDA", true},
		{"NVDA", "NVDA", true}, // ticker passed straight through
		{"nvidia corp swap", "NVDA", true},
		{"META PLATFORMS INC-CLASS A SWAP", "META", true},
		{"ALPHABET INC-CL A SWAP", "GOOGL", true},
		{"AMAZON.COM INC", "AMZN", true},
		{"TESLA INC SWAP GS", "TSLA", true},
		{"US DOLLARS", "", false},
		{"CASH OFFSET", "", false},
		{"FIRST AMERICAN GOVERNMENT OBLIGS X", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		ticker, ok := ResolveHoldingName(tc.name)
		if ok != tc.ok || ticker != tc.ticker {
			t.Errorf("ResolveHoldingName(%q) = (%q, %v), want (%q, %v)",
				tc.name, ticker, ok, tc.ticker, tc.ok)
		}
	}
}

func TestWeightSumWarning(t *testing.T) {
	within := []models.Holding{
		{Symbol: "NVDA", Weight: 0.55},
		{Symbol: "AAPL", Weight: 0.45},
	}
	if w := weightSumWarning(within); w != nil {
		t.Errorf("expected no warning at exactly 100%%, got %v", w)
	}

	// 99.66% is inside the half-percent band; the real page lands here.
	resolved, _ := ResolveHoldingRows(magsRows())
	if w := weightSumWarning(resolved); w != nil {
		t.Errorf("expected no warning at 99.66%%, got %v", w)
	}

	short := []models.Holding{
		{Symbol: "NVDA", Weight: 0.50},
		{Symbol: "AAPL", Weight: 0.40},
	}
	w := weightSumWarning(short)
	if w == nil {
		t.Fatal("expected warning at 90%")
	}
	if w.Code != models.WarnWeightSumMismatch {
		t.Errorf("expected code %s, got %s", models.WarnWeightSumMismatch, w.Code)
	}
}

func assertClose(t *testing.T, name string, got, want, epsilon float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s: got %.6f, want %.6f (epsilon %.6f)", name, got, want, epsilon)
	}
}
