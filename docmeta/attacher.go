package docmeta

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Attacher performs documentation attachment with an explicitly
// injected mode, so callers (tests above all) never have to mutate
// real process state to exercise either behavior.
type Attacher struct {
	mode   Mode
	logger *zap.Logger
}

// NewAttacher creates an Attacher with a fixed mode. A nil logger
// disables attach logging.
func NewAttacher(mode Mode, logger *zap.Logger) *Attacher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Attacher{mode: mode, logger: logger}
}

// Attach merges source's reserved slot into target's, overlaying
// extensions on top. See the package-level Attach for semantics; the
// only difference is that the mode comes from the Attacher, not the
// environment.
func (a *Attacher) Attach(source, target any, extensions Slot) {
	if a.mode == Disabled {
		return
	}
	merged := make(Slot)
	if src, ok := SlotOf(source); ok {
		for k, v := range src {
			merged[k] = v
		}
	}
	for k, v := range extensions {
		merged[k] = v
	}
	SetSlot(target, merged)
	a.logger.Debug("documentation attached",
		zap.String("attach_id", uuid.New().String()),
		zap.Int("slot_keys", len(merged)),
		zap.Int("extension_keys", len(extensions)),
	)
}
