package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actorkit/actorkit/core"
)

func TestProxy_CacheRoundTrip(t *testing.T) {
	c, root := newTestCore(t)
	defer c.Shutdown(root)

	proxy, err := root.CreateActor("counter", newCounterActor)
	require.NoError(t, err)
	require.NoError(t, proxy.WaitUntilInitialized())

	_, ok := proxy.CacheGet("missing")
	assert.False(t, ok)

	proxy.CacheSet("k", 42)
	value, ok := proxy.CacheGet("k")
	require.True(t, ok)
	assert.Equal(t, 42, value)

	proxy.CacheDelete("k")
	_, ok = proxy.CacheGet("k")
	assert.False(t, ok)
}

func TestProxy_TellReplyToDeliversMessage(t *testing.T) {
	c, root := newTestCore(t)
	defer c.Shutdown(root)

	replyProxy, err := root.CreateActor("replyTarget", newCounterActor)
	require.NoError(t, err)
	require.NoError(t, replyProxy.WaitUntilInitialized())

	workProxy, err := root.CreateActor("worker2", newCounterActor)
	require.NoError(t, err)
	require.NoError(t, workProxy.WaitUntilInitialized())

	tracker := workProxy.TellReplyTo(root, greetMessage{Name: "x"}, replyProxy.Identity())
	value, err := tracker.Get()
	require.NoError(t, err)
	assert.Equal(t, "hello, x", value)
}

func TestProxy_Identity(t *testing.T) {
	c, root := newTestCore(t)
	defer c.Shutdown(root)

	proxy, err := root.CreateActor("named", newCounterActor)
	require.NoError(t, err)
	assert.Equal(t, "/named", proxy.Identity())
}
