package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fixadd/BilgiislemTool/internal/db"
	"github.com/fixadd/BilgiislemTool/internal/model"
)

func intPtr(v int64) *int64 { return &v }

func TestAppendEventValidation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	cases := []struct {
		name string
		ev   model.LedgerEvent
	}{
		{"unknown category", model.LedgerEvent{Category: "printer", ItemID: 1, Action: model.ActionAssign, NewHolderID: intPtr(1), ActorID: 1}},
		{"missing item id", model.LedgerEvent{Category: model.CategoryPC, Action: model.ActionAssign, NewHolderID: intPtr(1), ActorID: 1}},
		{"unknown action", model.LedgerEvent{Category: model.CategoryPC, ItemID: 1, Action: "repair", ActorID: 1}},
		{"assign without holder", model.LedgerEvent{Category: model.CategoryPC, ItemID: 1, Action: model.ActionAssign, ActorID: 1}},
		{"return without old holder", model.LedgerEvent{Category: model.CategoryPC, ItemID: 1, Action: model.ActionReturn, ActorID: 1}},
		{"return with new holder", model.LedgerEvent{Category: model.CategoryPC, ItemID: 1, Action: model.ActionReturn, OldHolderID: intPtr(1), NewHolderID: intPtr(2), ActorID: 1}},
		{"move without location", model.LedgerEvent{Category: model.CategoryPC, ItemID: 1, Action: model.ActionMove, ActorID: 1}},
		{"relabel without labels", model.LedgerEvent{Category: model.CategoryPC, ItemID: 1, Action: model.ActionRelabel, ActorID: 1}},
		{"relabel with equal labels", model.LedgerEvent{Category: model.CategoryPC, ItemID: 1, Action: model.ActionRelabel, OldLabel: "INV-1", NewLabel: "INV-1", ActorID: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := tc.ev
			_, err := AppendEvent(ctx, database, &ev)
			if !errors.Is(err, model.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}

	// Nothing should have been written.
	events, err := QueryLedger(ctx, database, LedgerFilter{})
	if err != nil {
		t.Fatalf("QueryLedger: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected empty ledger, got %d events", len(events))
	}
}

func TestAppendEventAssignsIDsAndTimestamp(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, err := AppendEvent(ctx, database, &model.LedgerEvent{
		Category: model.CategoryPC, ItemID: 1, Action: model.ActionAssign,
		NewHolderID: intPtr(7), ActorID: 1,
	})
	if err != nil {
		t.Fatalf("AppendEvent: %v", err)
	}

	second, err := AppendEvent(ctx, database, &model.LedgerEvent{
		Category: model.CategoryPC, ItemID: 1, Action: model.ActionReturn,
		OldHolderID: intPtr(7), ActorID: 1,
	})
	if err != nil {
		t.Fatalf("AppendEvent: %v", err)
	}
	if second <= first {
		t.Errorf("expected strictly increasing ids, got %d then %d", first, second)
	}

	events, err := QueryLedger(ctx, database, LedgerFilter{Category: model.CategoryPC, ItemID: 1})
	if err != nil {
		t.Fatalf("QueryLedger: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].ChangeDate.IsZero() {
		t.Error("expected server-assigned change date")
	}
}

func TestLatestForResolvesMostRecent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	day1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	AppendEvent(ctx, database, &model.LedgerEvent{
		Category: model.CategoryPC, ItemID: 1, Action: model.ActionAssign,
		NewHolderID: intPtr(10), NewLocation: "A", ActorID: 1, ChangeDate: day1,
	})
	AppendEvent(ctx, database, &model.LedgerEvent{
		Category: model.CategoryPC, ItemID: 1, Action: model.ActionAssign,
		NewHolderID: intPtr(20), NewLocation: "B", ActorID: 2, ChangeDate: day2,
	})

	state, err := LatestFor(ctx, database, model.CategoryPC, 1)
	if err != nil {
		t.Fatalf("LatestFor: %v", err)
	}
	if state == nil {
		t.Fatal("expected a latest state")
	}
	if state.HolderID == nil || *state.HolderID != 20 {
		t.Errorf("expected holder 20, got %v", state.HolderID)
	}
	if state.Location != "B" {
		t.Errorf("expected location B, got %q", state.Location)
	}
}

func TestLatestForNoEventsIsNotAnError(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	state, err := LatestFor(ctx, database, model.CategoryLicense, 999)
	if err != nil {
		t.Fatalf("LatestFor: %v", err)
	}
	if state != nil {
		t.Errorf("expected no state for an item without events, got %+v", state)
	}
}

func TestLatestForTieBreaksByID(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// Two events sharing the exact same timestamp: the higher id wins.
	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	AppendEvent(ctx, database, &model.LedgerEvent{
		Category: model.CategoryPC, ItemID: 5, Action: model.ActionAssign,
		NewHolderID: intPtr(1), ActorID: 1, ChangeDate: when,
	})
	AppendEvent(ctx, database, &model.LedgerEvent{
		Category: model.CategoryPC, ItemID: 5, Action: model.ActionAssign,
		NewHolderID: intPtr(2), ActorID: 1, ChangeDate: when,
	})

	state, err := LatestFor(ctx, database, model.CategoryPC, 5)
	if err != nil {
		t.Fatalf("LatestFor: %v", err)
	}
	if state == nil || state.HolderID == nil || *state.HolderID != 2 {
		t.Fatalf("expected the later event (holder 2) to win the tie, got %+v", state)
	}
}

func TestLatestAllFiltersAndPaginates(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := int64(1); i <= 3; i++ {
		AppendEvent(ctx, database, &model.LedgerEvent{
			Category: model.CategoryPC, ItemID: i, Action: model.ActionAssign,
			NewHolderID: intPtr(10), ActorID: 1, ChangeDate: base.Add(time.Duration(i) * time.Hour),
		})
	}
	AppendEvent(ctx, database, &model.LedgerEvent{
		Category: model.CategoryLicense, ItemID: 1, Action: model.ActionAssign,
		NewHolderID: intPtr(99), ActorID: 1, ChangeDate: base,
	})

	all, err := LatestAll(ctx, database, LatestFilter{})
	if err != nil {
		t.Fatalf("LatestAll: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("expected 4 latest states, got %d", len(all))
	}

	pcs, _ := LatestAll(ctx, database, LatestFilter{Category: model.CategoryPC})
	if len(pcs) != 3 {
		t.Errorf("expected 3 pc states, got %d", len(pcs))
	}
	// Newest first.
	if len(pcs) == 3 && pcs[0].ItemID != 3 {
		t.Errorf("expected item 3 first, got %d", pcs[0].ItemID)
	}

	byHolder, _ := LatestAll(ctx, database, LatestFilter{HolderID: 99})
	if len(byHolder) != 1 || byHolder[0].Category != model.CategoryLicense {
		t.Errorf("expected one license state for holder 99, got %v", byHolder)
	}

	page, _ := LatestAll(ctx, database, LatestFilter{Category: model.CategoryPC, Limit: 2, Offset: 2})
	if len(page) != 1 || page[0].ItemID != 1 {
		t.Errorf("expected the oldest pc state on the last page, got %v", page)
	}
}

func TestQueryLedgerResolvesNames(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	ali, _ := CreateUser(ctx, database, "ali", "Ali", "Veli", "", "x", false)
	ayse, _ := CreateUser(ctx, database, "ayse", "Ayse", "Fatma", "", "x", false)
	depot, _ := CreateLookupItem(ctx, database, model.LookupLocation, "Depot")
	office, _ := CreateLookupItem(ctx, database, model.LookupLocation, "Office")

	AppendEvent(ctx, database, &model.LedgerEvent{
		Category: model.CategoryPC, ItemID: 1, Action: model.ActionMove,
		OldHolderID: &ali.ID, NewHolderID: &ayse.ID,
		OldLocation: fmt.Sprint(depot.ID), NewLocation: fmt.Sprint(office.ID),
		ActorID: ali.ID,
	})

	events, err := QueryLedger(ctx, database, LedgerFilter{Category: model.CategoryPC, ItemID: 1})
	if err != nil {
		t.Fatalf("QueryLedger: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	ev := events[0]
	if ev.OldHolderName != "Ali Veli" {
		t.Errorf("expected old holder 'Ali Veli', got %q", ev.OldHolderName)
	}
	if ev.NewHolderName != "Ayse Fatma" {
		t.Errorf("expected new holder 'Ayse Fatma', got %q", ev.NewHolderName)
	}
	if ev.OldLocationName != "Depot" {
		t.Errorf("expected old location 'Depot', got %q", ev.OldLocationName)
	}
	if ev.NewLocationName != "Office" {
		t.Errorf("expected new location 'Office', got %q", ev.NewLocationName)
	}
}

func TestQueryLedgerToleratesOrphanedReferences(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// Holder 42 has no users row; location is free text, not a lookup id.
	AppendEvent(ctx, database, &model.LedgerEvent{
		Category: model.CategoryAccessory, ItemID: 1, Action: model.ActionAssign,
		NewHolderID: intPtr(42), NewLocation: "Warehouse B", ActorID: 1,
	})

	events, err := QueryLedger(ctx, database, LedgerFilter{})
	if err != nil {
		t.Fatalf("QueryLedger: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].NewHolderName != "42" {
		t.Errorf("expected raw holder id fallback, got %q", events[0].NewHolderName)
	}
	if events[0].NewLocationName != "Warehouse B" {
		t.Errorf("expected raw location fallback, got %q", events[0].NewLocationName)
	}
}

func TestQueryLedgerFilters(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	AppendEvent(ctx, database, &model.LedgerEvent{
		Category: model.CategoryPC, ItemID: 1, Action: model.ActionAssign,
		NewHolderID: intPtr(1), ActorID: 9, ChangeDate: base,
	})
	AppendEvent(ctx, database, &model.LedgerEvent{
		Category: model.CategoryPC, ItemID: 1, Action: model.ActionAssign,
		OldHolderID: intPtr(1), NewHolderID: intPtr(2), ActorID: 9, ChangeDate: base.Add(time.Hour),
	})
	AppendEvent(ctx, database, &model.LedgerEvent{
		Category: model.CategoryStock, ItemID: 8, Action: model.ActionMove,
		NewLocation: "accessory", ActorID: 9, ChangeDate: base.Add(2 * time.Hour),
	})

	byItem, _ := QueryLedger(ctx, database, LedgerFilter{Category: model.CategoryPC, ItemID: 1})
	if len(byItem) != 2 {
		t.Errorf("expected 2 pc events, got %d", len(byItem))
	}
	if len(byItem) == 2 && byItem[0].ChangeDate.Before(byItem[1].ChangeDate) {
		t.Error("expected newest-first ordering")
	}

	// Holder filter matches events where the holder appears on either side.
	byHolder, _ := QueryLedger(ctx, database, LedgerFilter{HolderID: 1})
	if len(byHolder) != 2 {
		t.Errorf("expected 2 events involving holder 1, got %d", len(byHolder))
	}

	paged, _ := QueryLedger(ctx, database, LedgerFilter{Limit: 1, Offset: 1})
	if len(paged) != 1 || paged[0].Category != model.CategoryPC {
		t.Errorf("unexpected page contents: %v", paged)
	}
}
