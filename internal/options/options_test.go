package options

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDeriveKey(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Per Metre Rate", "permetrerate"},
		{"Day Rate", "dayrate"},
		{"  CCTV Survey  ", "cctvsurvey"},
		{"Min Charge (£)", "mincharge"},
		{"Rate 2", "rate2"},
		{"£$%", ""},
	}
	for _, c := range cases {
		if got := DeriveKey(c.name); got != c.want {
			t.Fatalf("DeriveKey(%q): want=%q got=%q", c.name, c.want, got)
		}
	}
}

func TestMapPreservesInsertionOrder(t *testing.T) {
	m := NewMap()
	m.Set("dayrate", Entry{Enabled: true, Value: "450"})
	m.Set("permetrerate", Entry{Value: "12.50"})
	m.Set("mincharge", Entry{})

	want := []string{"dayrate", "permetrerate", "mincharge"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("keys: want=%v got=%v", want, got)
	}

	// Replacing an existing entry must not move it.
	m.Set("dayrate", Entry{Enabled: false, Value: "500"})
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("keys after replace: want=%v got=%v", want, got)
	}
}

func TestMapJSONRoundTripKeepsOrder(t *testing.T) {
	m := NewMap()
	m.Set("zeta", Entry{Enabled: true, Value: "1"})
	m.Set("alpha", Entry{Value: "2"})
	m.Set("mid", Entry{Enabled: true, Value: "3"})

	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"zeta":{"enabled":true,"value":"1"},"alpha":{"enabled":false,"value":"2"},"mid":{"enabled":true,"value":"3"}}`
	if string(raw) != want {
		t.Fatalf("marshal: want=%s got=%s", want, raw)
	}

	var back Map
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := back.Keys(); !reflect.DeepEqual(got, []string{"zeta", "alpha", "mid"}) {
		t.Fatalf("round trip keys: got=%v", got)
	}
	e, ok := back.Get("alpha")
	if !ok || e.Value != "2" || e.Enabled {
		t.Fatalf("round trip entry: got=%+v ok=%v", e, ok)
	}
}

func TestMapZeroValueMarshalsEmptyObject(t *testing.T) {
	var m Map
	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "{}" {
		t.Fatalf("want={} got=%s", raw)
	}
}

func TestMapUnmarshalRejectsMalformedEntries(t *testing.T) {
	var m Map
	if err := json.Unmarshal([]byte(`{"dayrate":{"enabled":"yes","value":""}}`), &m); err == nil {
		t.Fatal("expected error for non-boolean enabled")
	}
	if err := json.Unmarshal([]byte(`{"dayrate":{"enabled":true,"value":"","extra":1}}`), &m); err == nil {
		t.Fatal("expected error for unknown entry field")
	}
	if err := json.Unmarshal([]byte(`["dayrate"]`), &m); err == nil {
		t.Fatal("expected error for non-object document")
	}
}

func TestMapScanValueRoundTrip(t *testing.T) {
	m := NewMap()
	m.Set("dayrate", Entry{Enabled: true, Value: "450"})
	m.Set("halfday", Entry{Value: "250"})

	v, err := m.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	var back Map
	if err := back.Scan(v); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !reflect.DeepEqual(back.Keys(), m.Keys()) {
		t.Fatalf("scan keys: want=%v got=%v", m.Keys(), back.Keys())
	}

	var empty Map
	if err := empty.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if empty.Len() != 0 {
		t.Fatalf("scan nil: want empty map, got %d entries", empty.Len())
	}
}

func TestMapDelete(t *testing.T) {
	m := NewMap()
	m.Set("a", Entry{})
	m.Set("b", Entry{})
	m.Set("c", Entry{})
	m.Delete("b")
	if got := m.Keys(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("keys after delete: got=%v", got)
	}
	m.Delete("missing")
	if m.Len() != 2 {
		t.Fatalf("delete of unknown key changed length: %d", m.Len())
	}
}
