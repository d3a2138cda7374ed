package lookup

import "testing"

func TestLocationResolverKnownCodes(t *testing.T) {
	r := NewStaticLocationResolver()

	if got := r.ShortName("750"); got != "DFW" {
		t.Fatalf("ShortName(750) = %q, want DFW", got)
	}
	if got := r.LongName("857"); got != "Tucson, AZ" {
		t.Fatalf("LongName(857) = %q, want Tucson, AZ", got)
	}
}

func TestLocationResolverWildcardSuffix(t *testing.T) {
	r := NewStaticLocationResolver()

	if got := r.ShortName("750xx"); got != "DFW" {
		t.Fatalf("ShortName(750xx) = %q, want DFW", got)
	}
	if got := r.LongName("850xx"); got != "Phoenix, AZ" {
		t.Fatalf("LongName(850xx) = %q, want Phoenix, AZ", got)
	}
}

func TestLocationResolverFallbacks(t *testing.T) {
	r := NewStaticLocationResolver()

	if got := r.ShortName("999"); got != "999" {
		t.Fatalf("ShortName(999) = %q, want raw code", got)
	}
	if got := r.LongName("999"); got != "ZIP 999" {
		t.Fatalf("LongName(999) = %q, want ZIP 999", got)
	}
}

func TestCarrierResolver(t *testing.T) {
	r := NewStaticCarrierResolver()

	if got := r.DisplayName("0e32a59c0c8e"); got != "XPO Logistics" {
		t.Fatalf("DisplayName = %q, want XPO Logistics", got)
	}
	if got := r.DisplayName("deadbeefcafe1234"); got != "Carrier-deadbeef" {
		t.Fatalf("fallback = %q, want Carrier-deadbeef", got)
	}
	if got := r.DisplayName("ab"); got != "Carrier-ab" {
		t.Fatalf("short fallback = %q, want Carrier-ab", got)
	}
	if r.Count() == 0 {
		t.Fatal("expected a non-empty carrier table")
	}
}
