package options

import (
	"reflect"
	"testing"
)

func sectionFixture() (Map, []string) {
	m := NewMap()
	m.Set("dayrate", Entry{Enabled: true, Value: "450"})
	m.Set("halfday", Entry{Enabled: true, Value: "250"})
	m.Set("mincharge", Entry{Value: "95"})
	return m, []string{"mincharge", "dayrate", "halfday"}
}

func TestAddAppendsToExplicitOrder(t *testing.T) {
	m, order := sectionFixture()
	key, order, err := Add(&m, order, "Weekend Rate")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if key != "weekendrate" {
		t.Fatalf("key: want=weekendrate got=%q", key)
	}
	e, ok := m.Get("weekendrate")
	if !ok || e.Enabled || e.Value != "" {
		t.Fatalf("new entry: got=%+v ok=%v", e, ok)
	}
	want := []string{"mincharge", "dayrate", "halfday", "weekendrate"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("order: want=%v got=%v", want, order)
	}
}

func TestAddWithoutExplicitOrderLeavesItEmpty(t *testing.T) {
	m := NewMap()
	m.Set("dayrate", Entry{})
	_, order, err := Add(&m, nil, "Weekend Rate")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(order) != 0 {
		t.Fatalf("order should stay empty (natural order applies), got=%v", order)
	}
}

func TestAddRejectsDuplicateAndEmptyKeys(t *testing.T) {
	m, order := sectionFixture()
	if _, _, err := Add(&m, order, "Day Rate"); err == nil {
		t.Fatal("expected duplicate key error")
	}
	if _, _, err := Add(&m, order, "£££"); err == nil {
		t.Fatal("expected empty key error")
	}
}

func TestRenameKeepsPositions(t *testing.T) {
	m, order := sectionFixture()
	newKey, order, err := Rename(&m, order, "halfday", "Half Day Rate")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if newKey != "halfdayrate" {
		t.Fatalf("new key: want=halfdayrate got=%q", newKey)
	}
	if got := m.Keys(); !reflect.DeepEqual(got, []string{"dayrate", "halfdayrate", "mincharge"}) {
		t.Fatalf("map keys: got=%v", got)
	}
	if !reflect.DeepEqual(order, []string{"mincharge", "dayrate", "halfdayrate"}) {
		t.Fatalf("order: got=%v", order)
	}
	e, _ := m.Get("halfdayrate")
	if e.Value != "250" || !e.Enabled {
		t.Fatalf("entry lost on rename: %+v", e)
	}
}

func TestRenameToSameKeyIsNoop(t *testing.T) {
	m, order := sectionFixture()
	newKey, order, err := Rename(&m, order, "dayrate", "DAY RATE")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if newKey != "dayrate" {
		t.Fatalf("want=dayrate got=%q", newKey)
	}
	if !reflect.DeepEqual(order, []string{"mincharge", "dayrate", "halfday"}) {
		t.Fatalf("order: got=%v", order)
	}
}

func TestRenameErrors(t *testing.T) {
	m, order := sectionFixture()
	if _, _, err := Rename(&m, order, "missing", "Whatever"); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if _, _, err := Rename(&m, order, "dayrate", "Half Day"); err == nil {
		t.Fatal("expected error for collision with existing key")
	}
}

func TestRemovePrunesOrder(t *testing.T) {
	m, order := sectionFixture()
	order = Remove(&m, order, "dayrate")
	if m.Has("dayrate") {
		t.Fatal("entry survived remove")
	}
	if !reflect.DeepEqual(order, []string{"mincharge", "halfday"}) {
		t.Fatalf("order: got=%v", order)
	}
}

func TestReorderRebuildsMapExactly(t *testing.T) {
	m, _ := sectionFixture()
	want := []string{"halfday", "mincharge", "dayrate"}
	order := Reorder(&m, want)
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("order: want=%v got=%v", want, order)
	}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("map iteration: want=%v got=%v", want, got)
	}
	e, _ := m.Get("dayrate")
	if e.Value != "450" {
		t.Fatalf("value lost on reorder: %+v", e)
	}
}

func TestReorderDropsStaleAndKeepsUnlisted(t *testing.T) {
	m, _ := sectionFixture()
	order := Reorder(&m, []string{"mincharge", "ghost", "dayrate"})
	if !reflect.DeepEqual(order, []string{"mincharge", "dayrate", "halfday"}) {
		t.Fatalf("order: got=%v", order)
	}
	if got := m.Keys(); !reflect.DeepEqual(got, order) {
		t.Fatalf("map iteration: got=%v", got)
	}
}

func TestRepair(t *testing.T) {
	m, _ := sectionFixture()

	// Stale keys pruned, missing keys appended in natural order.
	got := Repair(m, []string{"halfday", "removedlongago", "halfday"})
	if !reflect.DeepEqual(got, []string{"halfday", "dayrate", "mincharge"}) {
		t.Fatalf("repair: got=%v", got)
	}

	// Empty order stays empty: natural order applies.
	if got := Repair(m, nil); got != nil {
		t.Fatalf("repair of empty order: got=%v", got)
	}
}
