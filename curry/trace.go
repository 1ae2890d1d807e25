package curry

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewTraced returns the curried form of target, emitting one debug
// log per application. Every continuation descending from one
// NewTraced call shares a chain id, so interleaved partial
// applications from independent call sites stay distinguishable.
// A nil logger disables output without changing behavior.
func NewTraced(arity int, target Func, logger *zap.Logger) Curried {
	if arity < 0 {
		panic(InvalidArityError{Arity: arity})
	}
	if target == nil {
		panic(NotCallableError{GotType: "<nil>"})
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	chainId := uuid.New().String()
	hook := func(transition string, accumulated, supplied int) {
		logger.Debug("curried application",
			zap.String("chain_id", chainId),
			zap.String("transition", transition),
			zap.Int("arity", arity),
			zap.Int("accumulated", accumulated),
			zap.Int("supplied", supplied),
		)
	}
	return newCurried(arity, target, nil, hook)
}
