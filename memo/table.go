package memo

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Key is a normalized table key derived from one argument value.
type Key = any

// NotKeyableError reports an argument that can neither be compared
// nor rendered through fmt.Stringer, so it cannot index a table.
type NotKeyableError struct{ GotType string }

func (e NotKeyableError) Error() string {
	return "memo: value of type " + e.GotType + " is not comparable and not a fmt.Stringer"
}

// KeyOf normalizes an argument into a table key. Comparable values
// index directly; non-comparable values that implement fmt.Stringer
// are keyed by the xxhash of their string form. Anything else panics
// with NotKeyableError.
func KeyOf(arg any) Key {
	if arg == nil {
		return nil
	}
	if reflect.TypeOf(arg).Comparable() {
		return arg
	}
	if stringer, ok := arg.(fmt.Stringer); ok {
		return xxhash.Sum64String(stringer.String())
	}
	panic(NotKeyableError{GotType: reflect.TypeOf(arg).String()})
}

// emptyKeys indexes results of nullary calls, which have no argument
// to derive a key from.
type emptyKeys struct{}

// Table is a bounded lookup table over ordered key sequences. Entries
// are stored in two rotating maps: when the size cap is reached the
// older map is discarded wholesale, so the table never exceeds twice
// the cap and eviction costs nothing per entry.
type Table[O any] struct {
	shards  [2]*sync.Map
	headIdx uint32
	size    atomic.Uint32
	maxSize uint32
}

// New creates a Table with the given size cap. A zero cap panics.
func New[O any](maxSize uint32) Table[O] {
	if maxSize == 0 {
		panic("memo: maxSize should be greater than 0")
	}
	return Table[O]{
		shards:  [2]*sync.Map{{}, {}},
		maxSize: maxSize,
	}
}

// Load returns the value stored under keys, checking the live map
// first and the rotated-out map second.
func (t *Table[O]) Load(keys []Key) (O, bool) {
	headIdx := t.headIdx
	m, k := t.traverse(t.shards[headIdx], keys)
	v, ok := m.Load(k)
	if !ok {
		m, k = t.traverse(t.shards[1-headIdx], keys)
		v, ok = m.Load(k)
		if !ok {
			var zero O
			return zero, false
		}
	}
	return v.(O), true
}

// Store records value under keys, rotating the maps when the cap is
// reached.
func (t *Table[O]) Store(keys []Key, value O) {
	if swapped := t.size.CompareAndSwap(t.maxSize, 0); swapped {
		t.shards[1-t.headIdx] = &sync.Map{}
		t.headIdx = 1 - t.headIdx
	}
	m, k := t.traverse(t.shards[t.headIdx], keys)
	m.Store(k, value)
	t.size.Add(1)
}

func (t *Table[O]) traverse(shard *sync.Map, keys []Key) (*sync.Map, Key) {
	if len(keys) == 0 {
		return shard, emptyKeys{}
	}
	for _, k := range keys[:len(keys)-1] {
		v, ok := shard.Load(k)
		if !ok {
			newMap := &sync.Map{}
			shard.Store(k, newMap)
			v = newMap
		}
		shard = v.(*sync.Map)
	}
	return shard, keys[len(keys)-1]
}
