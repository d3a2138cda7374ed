package domain

import "testing"

func TestRoundingHelpers(t *testing.T) {
	if got := Round1(21.3636); got != 21.4 {
		t.Fatalf("Round1 = %v, want 21.4", got)
	}
	if got := Round2(-0.456); got != -0.46 {
		t.Fatalf("Round2 = %v, want -0.46", got)
	}
	if got := Pct1(0.11364); got != 11.4 {
		t.Fatalf("Pct1 = %v, want 11.4", got)
	}
	if got := Pct1(0); got != 0 {
		t.Fatalf("Pct1(0) = %v, want 0", got)
	}
}

func TestLaneDisplayRounding(t *testing.T) {
	l := LaneMetrics{
		OriginZip: "750", DestZip: "857", Route: "DFW→TUS",
		Volume: 100, AvgDelay: -0.456, TransitVariance: 1.234,
		EarlyRate: 0.4, OnTimeRate: 0.55, LateRate: 0.05,
		ClusterID: 1, ClusterName: "Early & Stable",
	}

	d := l.Display()
	if d.AvgDelay != -0.46 || d.TransitVariance != 1.23 {
		t.Fatalf("day values = (%v, %v), want (-0.46, 1.23)", d.AvgDelay, d.TransitVariance)
	}
	if d.EarlyPct != 40.0 || d.OnTimePct != 55.0 || d.LatePct != 5.0 {
		t.Fatalf("pcts = (%v, %v, %v), want (40, 55, 5)", d.EarlyPct, d.OnTimePct, d.LatePct)
	}
	if d.Route != l.Route || d.Volume != l.Volume || d.ClusterID != l.ClusterID {
		t.Fatal("identity fields must pass through unchanged")
	}
}
