package emulator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// dataTree is the in-memory realtime database. Interior nodes are
// map[string]any; leaves are strings, json.Number, bools or nil. Empty
// objects are pruned, as in Firebase.
type dataTree struct {
	mu   sync.RWMutex
	root any
}

// decodeValue parses a request body, keeping numbers as json.Number.
func decodeValue(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode value: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("decode value: trailing data")
	}
	return v, nil
}

// get returns the node at segments, or nil.
func (t *dataTree) get(segments []string) any {
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.root
	for _, s := range segments {
		m, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		node = m[s]
	}
	return node
}

// set replaces the node at segments. A nil value removes it.
func (t *dataTree) set(segments []string, value any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.root = setAt(t.root, segments, normalize(value))
}

// merge writes each child of children under segments, leaving siblings
// untouched.
func (t *dataTree) merge(segments []string, children any) error {
	m, ok := children.(map[string]any)
	if !ok {
		return errMergeNotAnObject
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for key, value := range m {
		path := append(append([]string{}, segments...), key)
		t.root = setAt(t.root, path, normalize(value))
	}
	return nil
}

func setAt(node any, segments []string, value any) any {
	if len(segments) == 0 {
		return value
	}

	m, ok := node.(map[string]any)
	if !ok {
		if value == nil {
			return node
		}
		m = make(map[string]any)
	}

	child := setAt(m[segments[0]], segments[1:], value)
	if child == nil {
		delete(m, segments[0])
	} else {
		m[segments[0]] = child
	}

	if len(m) == 0 {
		return nil
	}
	return m
}

// normalize drops null members and empty objects.
func normalize(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	for key, child := range m {
		if c := normalize(child); c == nil {
			delete(m, key)
		} else {
			m[key] = c
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}
