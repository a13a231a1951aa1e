package actorregistry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actorkit/actorkit/actorregistry"
	"github.com/actorkit/actorkit/core"
	"github.com/actorkit/actorkit/internal/testkit"
)

type pingMessage struct {
	core.Base
}

type registeredActor struct{}

func newRegisteredActor(base *core.Actor) core.ActorBehavior { return &registeredActor{} }

func (a *registeredActor) RegisterHandlers(r *core.Router) {
	_ = core.AddHandler(r, a.handlePing)
}

func (a *registeredActor) handlePing(ctx *core.Context, msg pingMessage) (any, error) {
	return "pong", nil
}

func TestRegisterAndExists(t *testing.T) {
	name := "registry-test-actor"
	assert.False(t, actorregistry.Exists(name))

	actorregistry.Register(name, newRegisteredActor)
	assert.True(t, actorregistry.Exists(name))
}

func TestCreate_UnknownTypeFails(t *testing.T) {
	_, err := actorregistry.Create("registry-test-unknown-type")
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestCreateActor_WiresRegistryLookupIntoCore(t *testing.T) {
	name := "registry-test-wired-actor"
	actorregistry.Register(name, newRegisteredActor)

	c := core.New(testkit.NewRecordingLogger())
	root := c.RootContext()
	defer c.Shutdown(root)

	proxy, err := actorregistry.CreateActor(root, "instance", name)
	require.NoError(t, err)
	require.NoError(t, proxy.WaitUntilInitialized())

	value, err := proxy.Ask(root, pingMessage{})
	require.NoError(t, err)
	assert.Equal(t, "pong", value)
}

func TestCreateActor_UnknownTypeFailsWithoutTouchingCore(t *testing.T) {
	c := core.New(testkit.NewRecordingLogger())
	root := c.RootContext()
	defer c.Shutdown(root)

	before := c.ActorCount()
	_, err := actorregistry.CreateActor(root, "instance", "registry-test-still-unknown")
	assert.True(t, errors.Is(err, core.ErrNotFound))
	assert.Equal(t, before, c.ActorCount())
}
