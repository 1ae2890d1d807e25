package curry_test

import (
	"testing"

	"github.com/on-the-ground/curry_ive_go/curry"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTracedPreservesResults(t *testing.T) {
	curried := curry.NewTraced(2, sum2, nil)

	assert.Equal(t, 3, curried(1, 2))
	assert.Equal(t, 3, curried(1).(curry.Curried)(2))
}

func TestTracedLogsEveryApplication(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	curried := curry.NewTraced(3, sum3, zap.New(core))

	assert.Equal(t, 6, curried(1).(curry.Curried)(2).(curry.Curried)(3))

	entries := logs.All()
	assert.Len(t, entries, 3)

	transitions := make([]string, 0, len(entries))
	chainIds := make(map[any]struct{})
	for _, entry := range entries {
		fields := entry.ContextMap()
		transitions = append(transitions, fields["transition"].(string))
		chainIds[fields["chain_id"]] = struct{}{}
	}
	assert.Equal(t, []string{"suspend", "suspend", "invoke"}, transitions)
	assert.Len(t, chainIds, 1)
}

func TestTracedLogsUnrollTransition(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	f := func(args ...any) any {
		a, b := args[0].(int), args[1].(int)
		return curry.Func(func(rest ...any) any {
			return a + b + rest[0].(int)
		})
	}
	curried := curry.NewTraced(2, f, zap.New(core))

	assert.Equal(t, 6, curried(1, 2, 3))

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "unroll", entries[0].ContextMap()["transition"])
}

func TestTracedChainsAreDistinguishable(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	_ = curry.NewTraced(1, sum2, logger) // never applied, never logs
	first := curry.NewTraced(2, sum2, logger)
	second := curry.NewTraced(2, sum2, logger)

	_ = first(1, 2)
	_ = second(1, 2)

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.NotEqual(t,
		entries[0].ContextMap()["chain_id"],
		entries[1].ContextMap()["chain_id"],
	)
}
