package docmeta

import (
	"errors"

	"github.com/mitchellh/mapstructure"
)

// ErrNoSlot is returned when decoding a value that has no reserved
// slot attached.
var ErrNoSlot = errors.New("docmeta: no slot attached")

// DecodeSlot decodes owner's reserved slot into out, which must be a
// pointer to a struct (or map). Slot keys match struct fields by name
// or by a `mapstructure` tag.
func DecodeSlot(owner any, out any) error {
	slot, ok := SlotOf(owner)
	if !ok {
		return ErrNoSlot
	}
	return mapstructure.Decode(map[string]any(slot), out)
}
