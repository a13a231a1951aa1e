package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actorkit/actorkit/core"
)

// actlet/timer lifecycle tests: Actor is intentionally never exposed outside
// Core/Proxy (spec.md §3), so every test here drives actlet/timer creation
// and cancellation the same way production code must — from inside an
// actor's own Initialize hook and its message handlers — and observes
// effects only through Proxy.Ask/Tell.

type workTickMessage struct {
	core.Base
}

type cancelActletMessage struct {
	core.Base
	Name string
}

type actletExistsQuery struct {
	core.Base
	Name string
}

type timerExistsQuery struct {
	core.Base
	Name string
}

type tickCountQuery struct {
	core.Base
}

type workerActor struct {
	base  *core.Actor
	ticks int
}

func newWorkerActor(base *core.Actor) core.ActorBehavior {
	return &workerActor{base: base}
}

func (a *workerActor) RegisterHandlers(r *core.Router) {
	_ = core.AddHandler(r, a.handleTick)
	_ = core.AddHandler(r, a.handleCancelActlet)
	_ = core.AddHandler(r, a.handleActletExistsQuery)
	_ = core.AddHandler(r, a.handleTimerExistsQuery)
	_ = core.AddHandler(r, a.handleTickCountQuery)
	_ = core.AddHandler(r, a.handleSpawnActlet)
	_ = core.AddHandler(r, a.handleCreateTimer)
}

func (a *workerActor) handleTick(ctx *core.Context, msg workTickMessage) (any, error) {
	a.ticks++
	return nil, nil
}

func (a *workerActor) handleCancelActlet(ctx *core.Context, msg cancelActletMessage) (any, error) {
	a.base.CancelActlet(msg.Name)
	return nil, nil
}

func (a *workerActor) handleActletExistsQuery(ctx *core.Context, msg actletExistsQuery) (any, error) {
	return a.base.IsActletExists(msg.Name), nil
}

func (a *workerActor) handleTimerExistsQuery(ctx *core.Context, msg timerExistsQuery) (any, error) {
	return a.base.IsTimerExists(msg.Name), nil
}

func (a *workerActor) handleTickCountQuery(ctx *core.Context, msg tickCountQuery) (any, error) {
	return a.ticks, nil
}

func succeedingActlet(ctx *core.Context, proxy *core.Proxy, configuration core.Message) (core.Message, error) {
	proxy.Tell(ctx, workTickMessage{})
	return nil, nil
}

func blockingActlet(ctx *core.Context, proxy *core.Proxy, configuration core.Message) (core.Message, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestActlet_SuccessRunsAndIsRemovedAfterCompletion(t *testing.T) {
	c, root := newTestCore(t)
	defer c.Shutdown(root)

	proxy, err := root.CreateActor("worker", newWorkerActor)
	require.NoError(t, err)
	require.NoError(t, proxy.WaitUntilInitialized())

	actlet, err := createActletVia(t, proxy, root, "work")
	require.NoError(t, err)
	_ = actlet

	require.Eventually(t, func() bool {
		exists, err := proxy.Ask(root, actletExistsQuery{Name: "work"})
		return err == nil && exists == false
	}, time.Second, 5*time.Millisecond)

	ticks, err := proxy.Ask(root, tickCountQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, ticks)
}

// createActletVia asks worker to create an actlet of its own via a message,
// since CreateActlet is an Actor method only the owning actor may call. It
// mirrors the production pattern (Initialize or a handler invoking
// base.CreateActlet), expressed here through a query/command message pair.
func createActletVia(t *testing.T, proxy *core.Proxy, ctx *core.Context, name string) (string, error) {
	t.Helper()
	_, err := proxy.Ask(ctx, spawnActletMessage{Name: name, Kind: "succeed"})
	return name, err
}

type spawnActletMessage struct {
	core.Base
	Name string
	Kind string
}

func (a *workerActor) handleSpawnActlet(ctx *core.Context, msg spawnActletMessage) (any, error) {
	fn := succeedingActlet
	if msg.Kind == "block" {
		fn = blockingActlet
	}
	_, err := a.base.CreateActlet(msg.Name, fn, nil)
	return nil, err
}

func TestActlet_CancelStopsBlockingActlet(t *testing.T) {
	c, root := newTestCore(t)
	defer c.Shutdown(root)

	proxy, err := root.CreateActor("worker", newWorkerActor)
	require.NoError(t, err)
	require.NoError(t, proxy.WaitUntilInitialized())

	_, err = proxy.Ask(root, spawnActletMessage{Name: "blocker", Kind: "block"})
	require.NoError(t, err)

	exists, err := proxy.Ask(root, actletExistsQuery{Name: "blocker"})
	require.NoError(t, err)
	assert.Equal(t, true, exists)

	_, err = proxy.Ask(root, cancelActletMessage{Name: "blocker"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		exists, err := proxy.Ask(root, actletExistsQuery{Name: "blocker"})
		return err == nil && exists == false
	}, time.Second, 5*time.Millisecond)
}

type createTimerMessage struct {
	core.Base
	Name        string
	Repetitions int
}

func (a *workerActor) handleCreateTimer(ctx *core.Context, msg createTimerMessage) (any, error) {
	_, err := a.base.CreateTimer(msg.Name, workTickMessage{}, 0.01, 0, true, msg.Repetitions)
	return nil, err
}

func TestTimer_FiresConfiguredRepetitionsThenCompletes(t *testing.T) {
	c, root := newTestCore(t)
	defer c.Shutdown(root)

	proxy, err := root.CreateActor("worker", newWorkerActor)
	require.NoError(t, err)
	require.NoError(t, proxy.WaitUntilInitialized())

	_, err = proxy.Ask(root, createTimerMessage{Name: "heartbeat", Repetitions: 3})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		exists, err := proxy.Ask(root, timerExistsQuery{Name: "heartbeat"})
		return err == nil && exists == false
	}, time.Second, 5*time.Millisecond)

	ticks, err := proxy.Ask(root, tickCountQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, ticks)
}
