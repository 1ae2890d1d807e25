package docmeta_test

import (
	"testing"

	"github.com/on-the-ground/curry_ive_go/docmeta"

	"github.com/stretchr/testify/assert"
)

type docInfo struct {
	Summary string
	Arity   int
	Params  []string `mapstructure:"params"`
}

func TestDecodeSlot(t *testing.T) {
	owner := &object{name: "owner"}
	docmeta.SetSlot(owner, docmeta.Slot{
		"Summary": "adds numbers",
		"Arity":   2,
		"params":  []string{"a", "b"},
	})

	var info docInfo
	assert.NoError(t, docmeta.DecodeSlot(owner, &info))
	assert.Equal(t, "adds numbers", info.Summary)
	assert.Equal(t, 2, info.Arity)
	assert.Equal(t, []string{"a", "b"}, info.Params)
}

func TestDecodeSlotWithoutSlot(t *testing.T) {
	owner := &object{name: "bare"}

	var info docInfo
	assert.ErrorIs(t, docmeta.DecodeSlot(owner, &info), docmeta.ErrNoSlot)
}
