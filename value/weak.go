package value

import "weak"

// WeakMap associates values with pointer keys without keeping the keys
// alive. Entries whose key has been collected read as absent.
type WeakMap[K, V any] struct {
	entries map[weak.Pointer[K]]V
}

// NewWeakMap creates an empty weak map.
func NewWeakMap[K, V any]() *WeakMap[K, V] {
	return &WeakMap[K, V]{entries: make(map[weak.Pointer[K]]V)}
}

func (*WeakMap[K, V]) weakMap() {}

// Set stores v under key. A nil key is ignored.
func (w *WeakMap[K, V]) Set(key *K, v V) {
	if key == nil {
		return
	}
	if w.entries == nil {
		w.entries = make(map[weak.Pointer[K]]V)
	}
	w.entries[weak.Make(key)] = v
}

// Get returns the value stored under key.
func (w *WeakMap[K, V]) Get(key *K) (V, bool) {
	var zero V
	if key == nil {
		return zero, false
	}
	v, ok := w.entries[weak.Make(key)]
	return v, ok
}

// Has reports whether key is present.
func (w *WeakMap[K, V]) Has(key *K) bool {
	_, ok := w.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (w *WeakMap[K, V]) Delete(key *K) bool {
	if !w.Has(key) {
		return false
	}
	delete(w.entries, weak.Make(key))
	return true
}

// WeakSet holds pointers without keeping them alive.
type WeakSet[T any] struct {
	members map[weak.Pointer[T]]struct{}
}

// NewWeakSet creates an empty weak set.
func NewWeakSet[T any]() *WeakSet[T] {
	return &WeakSet[T]{members: make(map[weak.Pointer[T]]struct{})}
}

func (*WeakSet[T]) weakSet() {}

// Add inserts p. A nil pointer is ignored.
func (w *WeakSet[T]) Add(p *T) {
	if p == nil {
		return
	}
	if w.members == nil {
		w.members = make(map[weak.Pointer[T]]struct{})
	}
	w.members[weak.Make(p)] = struct{}{}
}

// Has reports whether p is a member.
func (w *WeakSet[T]) Has(p *T) bool {
	if p == nil {
		return false
	}
	_, ok := w.members[weak.Make(p)]
	return ok
}

// Delete removes p and reports whether it was a member.
func (w *WeakSet[T]) Delete(p *T) bool {
	if !w.Has(p) {
		return false
	}
	delete(w.members, weak.Make(p))
	return true
}
