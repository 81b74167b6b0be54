package options

import "fmt"

// The reconciler keeps a section's explicit order in step with its option
// map. The map is the source of truth for values; the order list is a
// projection over its keys. Every structural mutation repairs the projection
// in the same operation, so the invariant "order and map hold the same keys"
// holds after each call, not just after an explicit reorder.

// Add derives a key from name and inserts a disabled empty entry. When an
// explicit order exists the new key is appended to it.
func Add(m *Map, order []string, name string) (string, []string, error) {
	key := DeriveKey(name)
	if key == "" {
		return "", order, fmt.Errorf("option name %q yields an empty key", name)
	}
	if m.Has(key) {
		return "", order, fmt.Errorf("option %q already exists", key)
	}
	m.Set(key, Entry{Enabled: false, Value: ""})
	if len(order) > 0 {
		order = append(order, key)
	}
	return key, order, nil
}

// Rename moves the entry under oldKey to the key derived from newName,
// keeping its position in both the map and the explicit order.
func Rename(m *Map, order []string, oldKey, newName string) (string, []string, error) {
	newKey := DeriveKey(newName)
	if newKey == "" {
		return "", order, fmt.Errorf("option name %q yields an empty key", newName)
	}
	entry, ok := m.Get(oldKey)
	if !ok {
		return "", order, fmt.Errorf("option %q does not exist", oldKey)
	}
	if newKey == oldKey {
		return newKey, order, nil
	}
	if m.Has(newKey) {
		return "", order, fmt.Errorf("option %q already exists", newKey)
	}

	rebuilt := NewMap()
	for _, k := range m.Keys() {
		if k == oldKey {
			rebuilt.Set(newKey, entry)
			continue
		}
		e, _ := m.Get(k)
		rebuilt.Set(k, e)
	}
	*m = rebuilt

	for i, k := range order {
		if k == oldKey {
			order[i] = newKey
		}
	}
	return newKey, order, nil
}

// Remove deletes the entry and prunes the key from the explicit order.
func Remove(m *Map, order []string, key string) []string {
	m.Delete(key)
	out := order[:0]
	for _, k := range order {
		if k != key {
			out = append(out, k)
		}
	}
	return out
}

// Reorder rebuilds the map so it iterates in exactly the given order and
// returns the order to persist. Keys not present in the map are dropped from
// the list; map entries missing from the list keep their values and are
// appended after the listed ones.
func Reorder(m *Map, keys []string) []string {
	rebuilt := NewMap()
	for _, k := range keys {
		if e, ok := m.Get(k); ok && !rebuilt.Has(k) {
			rebuilt.Set(k, e)
		}
	}
	for _, k := range m.Keys() {
		if !rebuilt.Has(k) {
			e, _ := m.Get(k)
			rebuilt.Set(k, e)
		}
	}
	*m = rebuilt
	return rebuilt.Keys()
}

// Repair is the read/write boundary defense: stale order keys are pruned and
// map keys absent from the order are appended in natural order. An empty
// order stays empty, meaning natural order applies.
func Repair(m Map, order []string) []string {
	if len(order) == 0 {
		return nil
	}
	out := make([]string, 0, len(order))
	seen := map[string]bool{}
	for _, k := range order {
		if m.Has(k) && !seen[k] {
			out = append(out, k)
			seen[k] = true
		}
	}
	for _, k := range m.Keys() {
		if !seen[k] {
			out = append(out, k)
		}
	}
	return out
}
