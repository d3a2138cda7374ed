package services

import (
	"testing"

	"lane-analytics-service/internal/domain"
)

func TestClassifyScenarios(t *testing.T) {
	cases := []struct {
		name     string
		in       ClassifierInput
		wantID   int
		wantName string
	}{
		{
			name:     "early and stable",
			in:       ClassifierInput{AvgDelay: -0.5, TransitVariance: 1.0, EarlyRate: 0.4, OnTimeRate: 0.5, LateRate: 0.1, Volume: 30},
			wantID:   1,
			wantName: ClusterEarlyStable,
		},
		{
			name:     "systematically late despite low variance",
			in:       ClassifierInput{AvgDelay: 1.0, TransitVariance: 1.0, EarlyRate: 0.1, OnTimeRate: 0.4, LateRate: 0.5, Volume: 100},
			wantID:   4,
			wantName: ClusterSystemLate,
		},
		{
			name:     "late wins over jitter when both match",
			in:       ClassifierInput{AvgDelay: 1.5, TransitVariance: 4.0, EarlyRate: 0.05, OnTimeRate: 0.45, LateRate: 0.5, Volume: 100},
			wantID:   4,
			wantName: ClusterSystemLate,
		},
		{
			name:     "high jitter",
			in:       ClassifierInput{AvgDelay: 0.1, TransitVariance: 4.2, EarlyRate: 0.2, OnTimeRate: 0.4, LateRate: 0.4, Volume: 150},
			wantID:   3,
			wantName: ClusterHighJitter,
		},
		{
			name:     "on-time and reliable",
			in:       ClassifierInput{AvgDelay: 0.0, TransitVariance: 1.0, EarlyRate: 0.17, OnTimeRate: 0.66, LateRate: 0.17, Volume: 120},
			wantID:   2,
			wantName: ClusterOnTimeReliable,
		},
		{
			name:     "low volume trumps everything",
			in:       ClassifierInput{AvgDelay: -0.5, TransitVariance: 1.0, EarlyRate: 0.4, OnTimeRate: 0.5, LateRate: 0.1, Volume: 10},
			wantID:   5,
			wantName: ClusterLowVolume,
		},
		{
			name:     "mixed pattern falls through",
			in:       ClassifierInput{AvgDelay: 0.2, TransitVariance: 3.0, EarlyRate: 0.25, OnTimeRate: 0.42, LateRate: 0.33, Volume: 60},
			wantID:   5,
			wantName: ClusterLowVolume,
		},
		{
			name:     "boundary values miss every rule",
			in:       ClassifierInput{AvgDelay: -0.3, TransitVariance: 3.5, EarlyRate: 0.3, OnTimeRate: 0.55, LateRate: 0.45, Volume: 20},
			wantID:   5,
			wantName: ClusterLowVolume,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, name := Classify(tc.in)
			if id != tc.wantID || name != tc.wantName {
				t.Fatalf("Classify() = (%d, %q), want (%d, %q)", id, name, tc.wantID, tc.wantName)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	in := ClassifierInput{AvgDelay: 0.3, TransitVariance: 2.0, EarlyRate: 0.2, OnTimeRate: 0.6, LateRate: 0.2, Volume: 80}

	firstID, firstName := Classify(in)
	for i := 0; i < 100; i++ {
		id, name := Classify(in)
		if id != firstID || name != firstName {
			t.Fatalf("classification changed between calls: (%d, %q) vs (%d, %q)", id, name, firstID, firstName)
		}
	}
}

func TestDeriveRates(t *testing.T) {
	early, onTime, late := DeriveRates(domain.LaneAggregate{
		Volume:      200,
		EarlyCount:  40,
		OnTimeCount: 110,
		LateCount:   50,
	})
	if early != 0.2 || onTime != 0.55 || late != 0.25 {
		t.Fatalf("rates = (%v, %v, %v), want (0.2, 0.55, 0.25)", early, onTime, late)
	}

	sum := early + onTime + late
	if sum < 0.999 || sum > 1.001 {
		t.Fatalf("rates sum = %v, want 1", sum)
	}
}

func TestDeriveRatesZeroVolume(t *testing.T) {
	early, onTime, late := DeriveRates(domain.LaneAggregate{Volume: 0})
	if early != 0 || onTime != 0 || late != 0 {
		t.Fatalf("rates = (%v, %v, %v), want all zero", early, onTime, late)
	}
}
