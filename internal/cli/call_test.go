package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/agentdesk/internal/callcontrol"
	"github.com/rshade/agentdesk/internal/cli"
)

func TestCallButtons_ConnectedVoice(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "call", "buttons", "--connected")
	require.NoError(t, err)
	for _, id := range []string{"mute", "hold", "consult", "transfer", "end"} {
		assert.Contains(t, out, id)
	}
	assert.NotContains(t, out, "wrapup")
	assert.NotContains(t, out, "conference")
}

func TestCallButtons_HeldCall(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "call", "buttons", "--connected", "--held")
	require.NoError(t, err)
	assert.Contains(t, out, "Resume")
	assert.Contains(t, out, "disabled")
}

func TestCallButtons_WrapUp(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "call", "buttons", "--connected", "--wrapup-required")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrap up")
	assert.NotContains(t, out, "mute")

	out, err = execute(t, "call", "buttons", "--connected", "--wrapup-required", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "mute")
	assert.Contains(t, out, "hidden")
}

func TestCallButtons_NoTask(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "call", "buttons")
	require.NoError(t, err)
	assert.Contains(t, out, "No call-control buttons.")
}

func TestCallWrapUp(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "call", "wrapup")
	require.NoError(t, err)
	assert.Contains(t, out, "Resolved")
	assert.Contains(t, out, "Escalated")
	assert.Contains(t, out, "yes")

	out, err = execute(t, "call", "wrapup", "w2")
	require.NoError(t, err)
	assert.Contains(t, out, "OK w2 (Escalated)")

	out, err = execute(t, "call", "wrapup", "")
	require.NoError(t, err)
	assert.Contains(t, out, "OK w1 (Resolved)")

	_, err = execute(t, "call", "wrapup", "w9")
	require.ErrorIs(t, err, callcontrol.ErrUnknownWrapUpReason)
}

func TestCallButtons_PressAndElapsed(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "call", "buttons", "--connected", "--elapsed", "95s", "--press", "hold")
	require.NoError(t, err)
	assert.Contains(t, out, "Call time: 01:35")
	assert.Contains(t, out, "Requested: hold")

	out, err = execute(t, "call", "buttons", "--connected", "--held", "--press", "hold")
	require.NoError(t, err)
	assert.Contains(t, out, "Requested: resume")

	out, err = execute(t, "call", "buttons", "--connected", "--recording", "--press", "record")
	require.NoError(t, err)
	assert.Contains(t, out, "Requested: pause recording")

	_, err = execute(t, "call", "buttons", "--connected", "--held", "--press", "mute")
	require.ErrorIs(t, err, cli.ErrButtonUnavailable)

	_, err = execute(t, "call", "buttons", "--press", "transfer")
	require.ErrorIs(t, err, cli.ErrButtonUnavailable)
}
