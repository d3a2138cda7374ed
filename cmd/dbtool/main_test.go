package main

import (
	"strings"
	"testing"
)

func TestInitAndSeedReturnsError(t *testing.T) {
	// A nil pool fails in InitSchema; the error must come back to the
	// caller instead of terminating the process.
	err := initAndSeed(nil, "does-not-exist.csv")
	if err == nil {
		t.Fatal("expected an error for a nil DB")
	}
	if !strings.Contains(err.Error(), "init and seed") {
		t.Fatalf("error = %q, want the init-and-seed prefix", err)
	}
}
