package storage

import (
	"testing"
)

func TestSetClause(t *testing.T) {
	t.Run("numbers placeholders in order", func(t *testing.T) {
		var set setClause
		set.add("name", "Market Stall Permit")
		set.add("amount", "15000.00")

		if got := set.sql(); got != "name = $1, amount = $2" {
			t.Fatalf("unexpected sql %q", got)
		}
		placeholder, args := set.where("rc1")
		if placeholder != "$3" {
			t.Fatalf("expected $3, got %s", placeholder)
		}
		if len(args) != 3 || args[2] != "rc1" {
			t.Fatalf("unexpected args %v", args)
		}
	})

	t.Run("reports empty when nothing set", func(t *testing.T) {
		var set setClause
		if !set.empty() {
			t.Fatal("expected empty clause")
		}
		set.add("status", "paid")
		if set.empty() {
			t.Fatal("expected non-empty clause")
		}
	})
}
