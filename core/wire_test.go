package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actorkit/actorkit/core"
)

type wireTestMessage struct {
	core.Base
	OrderID string
	Amount  int
}

func TestEncodeDecodeMessage_RoundTrip(t *testing.T) {
	original := wireTestMessage{OrderID: "ord-1", Amount: 42}

	data, err := core.EncodeMessage(original)
	require.NoError(t, err)

	decoded, err := core.DecodeMessage[wireTestMessage](data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestEncodeDecodeEnvelope_RoundTrip(t *testing.T) {
	original := &core.Envelope{
		ID:       "env-1",
		Sender:   "/a",
		Receiver: "/b",
		Message:  wireTestMessage{OrderID: "ord-2", Amount: 7},
		ReplyTo:  "/c",
	}

	data, err := core.EncodeEnvelope(original)
	require.NoError(t, err)

	decoded, err := core.DecodeEnvelope[wireTestMessage](data)
	require.NoError(t, err)
	assert.Equal(t, original.ID, decoded.ID)
	assert.Equal(t, original.Sender, decoded.Sender)
	assert.Equal(t, original.Receiver, decoded.Receiver)
	assert.Equal(t, original.ReplyTo, decoded.ReplyTo)
	assert.Equal(t, original.Message, decoded.Message)
}

func TestMessageTypeName(t *testing.T) {
	assert.Equal(t, "wireTestMessage", core.MessageTypeName(wireTestMessage{}))
	assert.Equal(t, "", core.MessageTypeName(nil))
}
