// Package docmeta propagates documentation metadata between values.
//
// Metadata lives in a reserved slot held in a package-level side
// table keyed by object identity, never in the value's own property
// namespace, so ordinary data keys can never collide with it.
//
// Attachment is gated by documentation mode, an environment-sourced
// flag read at call time. The default is disabled: with the flag
// unset (or set to "false") every Attach is a no-op. Tests and
// embedders that must not touch process state can inject the mode
// explicitly through an Attacher.
package docmeta

import (
	"os"
	"reflect"
	"sync"

	"github.com/on-the-ground/curry_ive_go/shared/helper"
)

// EnvKey is the environment variable controlling documentation mode.
const EnvKey = "DOCGEN_MODE"

// Mode tells whether documentation propagation is active.
type Mode bool

const (
	Disabled Mode = false
	Enabled  Mode = true
)

// ParseMode interprets the textual flag value: "false" or the empty
// string means disabled, anything else enables documentation mode.
func ParseMode(value string) Mode {
	return value != "" && value != "false"
}

// ModeFromEnv reads EnvKey and parses it. The variable is read on
// every call, never cached.
func ModeFromEnv() Mode {
	return ParseMode(os.Getenv(EnvKey))
}

// Slot is the reserved metadata slot: a single-level key overlay of
// documentation entries.
type Slot map[string]any

// NotComparableError reports a slot owner whose dynamic type cannot
// serve as an identity key in the side table.
type NotComparableError struct{ GotType string }

func (e NotComparableError) Error() string {
	return "docmeta: owner of type " + e.GotType + " is not comparable"
}

// slots is the side table mapping owner identity to its Slot.
var slots sync.Map

func ownerKey(owner any) any {
	if owner == nil {
		panic(NotComparableError{GotType: "<nil>"})
	}
	if !reflect.TypeOf(owner).Comparable() {
		panic(NotComparableError{GotType: reflect.TypeOf(owner).String()})
	}
	return owner
}

// SetSlot stores slot as owner's reserved slot, replacing any
// previous one. Owners must be comparable; pointer owners are the
// usual choice since identity then means "this exact value".
func SetSlot(owner any, slot Slot) {
	slots.Store(ownerKey(owner), slot)
}

// SlotOf returns owner's reserved slot. The returned map is the
// stored one, not a copy.
func SlotOf(owner any) (Slot, bool) {
	return helper.TypedLookup[Slot](func() (any, bool) {
		return slots.Load(ownerKey(owner))
	})
}

// ClearSlot removes owner's reserved slot, if any.
func ClearSlot(owner any) {
	slots.Delete(ownerKey(owner))
}

// SlotValue returns one typed entry of owner's reserved slot.
// ok is false when the slot or the key is missing, or the stored
// value is not a T.
func SlotValue[T any](owner any, key string) (T, bool) {
	return helper.TypedLookup[T](func() (any, bool) {
		slot, ok := SlotOf(owner)
		if !ok {
			return nil, false
		}
		v, ok := slot[key]
		return v, ok
	})
}

// Attach copies source's reserved slot onto target, overlaying
// extensions on top (extensions win on same-named keys). The overlay
// is shallow and replaces any slot target held before. Documentation
// mode is read from the environment at call time; when disabled,
// Attach has no observable effect.
func Attach(source, target any, extensions Slot) {
	NewAttacher(ModeFromEnv(), nil).Attach(source, target, extensions)
}
