package policy

import (
	"errors"
	"sort"
	"sync"
)

var ErrAccessDenied = errors.New("access denied")

// Memory is an in-process Registry. Values are stored as uint32 or string.
type Memory struct {
	mu sync.Mutex

	// Denied makes Probe fail.
	Denied bool
	// FailCreate and FailSet inject errors by key path.
	FailCreate map[string]error
	FailSet    map[string]error

	keys map[string]map[string]any
	open int
}

func NewMemory() *Memory {
	return &Memory{
		FailCreate: map[string]error{},
		FailSet:    map[string]error{},
		keys:       map[string]map[string]any{},
	}
}

func (m *Memory) CreateKey(path string) (Key, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.FailCreate[path]; err != nil {
		return nil, err
	}
	if m.keys[path] == nil {
		m.keys[path] = map[string]any{}
	}
	m.open++
	return &memKey{m: m, path: path}, nil
}

func (m *Memory) Probe(string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Denied {
		return ErrAccessDenied
	}
	return nil
}

// Keys returns the created key paths, sorted.
func (m *Memory) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.keys))
	for k := range m.keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Values returns a copy of the values under path.
func (m *Memory) Values(path string) map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]any, len(m.keys[path]))
	for k, v := range m.keys[path] {
		out[k] = v
	}
	return out
}

// OpenHandles is the number of keys created but not yet closed.
func (m *Memory) OpenHandles() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

type memKey struct {
	m      *Memory
	path   string
	closed bool
}

func (k *memKey) set(name string, v any) error {
	k.m.mu.Lock()
	defer k.m.mu.Unlock()
	if k.closed {
		return errors.New("key closed")
	}
	if err := k.m.FailSet[k.path]; err != nil {
		return err
	}
	k.m.keys[k.path][name] = v
	return nil
}

func (k *memKey) SetDWordValue(name string, value uint32) error { return k.set(name, value) }

func (k *memKey) SetStringValue(name, value string) error { return k.set(name, value) }

func (k *memKey) Close() error {
	k.m.mu.Lock()
	defer k.m.mu.Unlock()
	if k.closed {
		return nil
	}
	k.closed = true
	k.m.open--
	return nil
}
