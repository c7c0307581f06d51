package store

import (
	"context"
	"testing"

	"github.com/fixadd/BilgiislemTool/internal/db"
)

func TestQueryActivityOrderingAndFilter(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	for _, e := range []struct{ actor, action string }{
		{"ali", "created hardware record 1"},
		{"ayse", "deleted license record 2"},
		{"ali", "restored hardware record 1"},
	} {
		if err := LogAction(ctx, database, e.actor, e.action); err != nil {
			t.Fatalf("LogAction: %v", err)
		}
	}

	all, err := QueryActivity(ctx, database, "", 0, 0)
	if err != nil {
		t.Fatalf("QueryActivity: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	// Newest first; same-second inserts fall back to id order.
	if all[0].Action != "restored hardware record 1" {
		t.Errorf("expected the latest entry first, got %q", all[0].Action)
	}

	ali, err := QueryActivity(ctx, database, "ali", 0, 0)
	if err != nil {
		t.Fatalf("QueryActivity: %v", err)
	}
	if len(ali) != 2 {
		t.Errorf("expected 2 entries for ali, got %d", len(ali))
	}

	page, err := QueryActivity(ctx, database, "", 1, 1)
	if err != nil {
		t.Fatalf("QueryActivity: %v", err)
	}
	if len(page) != 1 || page[0].Actor != "ayse" {
		t.Errorf("unexpected page contents: %v", page)
	}
}
