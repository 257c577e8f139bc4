package format

import "testing"

func TestCurrency(t *testing.T) {
	if got := Currency(1500); got != "R$ 1.500,00" {
		t.Fatalf("expected R$ 1.500,00, got %q", got)
	}
	if got := Currency(97500); got != "R$ 97.500,00" {
		t.Fatalf("expected R$ 97.500,00, got %q", got)
	}
}

func TestNumber(t *testing.T) {
	if got := Number(340000); got != "340.000" {
		t.Fatalf("expected 340.000, got %q", got)
	}
}

func TestDate(t *testing.T) {
	cases := map[string]string{
		"2024-12-15": "15/12/2024",
		"":           "-",
		"amanhã":     "amanhã",
	}
	for in, want := range cases {
		if got := Date(in); got != want {
			t.Fatalf("Date(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(42, 45); got != 93.3 {
		t.Fatalf("expected 93.3, got %v", got)
	}
	if got := Percent(1, 0); got != 0 {
		t.Fatalf("expected 0 for empty total, got %v", got)
	}
	if got := PercentLabel(Percent(22, 23)); got != "95.7%" {
		t.Fatalf("expected 95.7%%, got %s", got)
	}
}

func TestChange(t *testing.T) {
	if got := SignedPercentLabel(Change(895000, 900000)); got != "+0.6%" {
		t.Fatalf("expected +0.6%%, got %s", got)
	}
	if got := Change(0, 10); got != 0 {
		t.Fatalf("expected 0 when previous is zero, got %v", got)
	}
}

func TestCompactCurrency(t *testing.T) {
	cases := map[float64]string{
		900000:  "R$ 900K",
		135000:  "R$ 135K",
		1230000: "R$ 1.23M",
		1500:    "R$ 1.5K",
		2000000: "R$ 2M",
		950:     "R$ 950",
	}
	for in, want := range cases {
		if got := CompactCurrency(in); got != want {
			t.Fatalf("CompactCurrency(%v) = %q, want %q", in, got, want)
		}
	}
}
