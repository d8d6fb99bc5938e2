package callcontrol

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTimerKey(t *testing.T) {
	assert.Equal(t, "timer-0", CreateTimerKey(0))
	assert.Equal(t, "timer-1234567890", CreateTimerKey(1234567890))
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00", FormatElapsed(-time.Second))
	assert.Equal(t, "01:05", FormatElapsed(65*time.Second))
	assert.Equal(t, "01:00:01", FormatElapsed(time.Hour+time.Second))
}

func byID(buttons []Button) map[ButtonID]Button {
	out := make(map[ButtonID]Button, len(buttons))
	for _, b := range buttons {
		out[b.ID] = b
	}
	return out
}

func TestButtons(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("connected voice call", func(t *testing.T) {
		got := byID(Buttons(TaskState{Media: MediaTelephony, Connected: true, EndCallEnabled: true}, logger))

		assert.True(t, got[ButtonMute].Visible)
		assert.True(t, got[ButtonHold].Visible)
		assert.True(t, got[ButtonConsult].Visible)
		assert.True(t, got[ButtonTransfer].Visible)
		assert.False(t, got[ButtonConference].Visible)
		assert.False(t, got[ButtonWrapUp].Visible)
		assert.False(t, got[ButtonEnd].Disabled)
	})

	t.Run("held call", func(t *testing.T) {
		got := byID(Buttons(TaskState{Media: MediaTelephony, Connected: true, Held: true, EndCallEnabled: true}, logger))

		assert.Equal(t, "Resume", got[ButtonHold].Label)
		assert.True(t, got[ButtonHold].Active)
		assert.True(t, got[ButtonMute].Disabled)
		assert.True(t, got[ButtonEnd].Disabled)
	})

	t.Run("consult connected offers conference", func(t *testing.T) {
		got := byID(Buttons(TaskState{
			Media: MediaTelephony, Connected: true, ConsultInProgress: true, ConsultConnected: true,
		}, logger))

		assert.True(t, got[ButtonConference].Visible)
		assert.False(t, got[ButtonConsult].Visible)
		assert.True(t, got[ButtonHold].Disabled)
	})

	t.Run("chat hides voice controls", func(t *testing.T) {
		got := byID(Buttons(TaskState{Media: MediaChat, Connected: true}, logger))

		assert.False(t, got[ButtonMute].Visible)
		assert.False(t, got[ButtonHold].Visible)
		assert.True(t, got[ButtonTransfer].Visible)
		assert.Equal(t, "End chat", got[ButtonEnd].Label)
	})

	t.Run("wrap-up hides everything else", func(t *testing.T) {
		visible := VisibleButtons(Buttons(TaskState{Media: MediaTelephony, Connected: true, WrapUpRequired: true}, logger))

		require.Len(t, visible, 1)
		assert.Equal(t, ButtonWrapUp, visible[0].ID)
	})
}

func TestActionsInvoke(t *testing.T) {
	t.Run("runs wired action", func(t *testing.T) {
		held := false
		a := Actions{Hold: func() error { held = true; return nil }}

		assert.True(t, a.Invoke(ButtonHold, TaskState{}))
		assert.True(t, held)
	})

	t.Run("toggles to resume when held", func(t *testing.T) {
		resumed := false
		a := Actions{Resume: func() error { resumed = true; return nil }}

		assert.True(t, a.Invoke(ButtonHold, TaskState{Held: true}))
		assert.True(t, resumed)
	})

	t.Run("missing action is logged no-op", func(t *testing.T) {
		var buf bytes.Buffer
		a := Actions{Logger: zerolog.New(&buf)}

		assert.False(t, a.Invoke(ButtonTransfer, TaskState{}))
		assert.Contains(t, buf.String(), `"wired":false`)
	})

	t.Run("errors and panics are contained", func(t *testing.T) {
		var buf bytes.Buffer
		a := Actions{
			Logger: zerolog.New(&buf),
			End:    func() error { return errors.New("sdk rejected") },
			Mute:   func() error { panic("boom") },
		}

		assert.False(t, a.Invoke(ButtonEnd, TaskState{}))
		assert.NotPanics(t, func() { assert.False(t, a.Invoke(ButtonMute, TaskState{})) })
		assert.Contains(t, buf.String(), "sdk rejected")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("unknown action", func(t *testing.T) {
		assert.False(t, Actions{}.Invoke(ButtonID("dance"), TaskState{}))
	})
}

func TestValidateWrapUp(t *testing.T) {
	reasons := []WrapUpReason{{ID: "r1", Name: "Resolved"}, {ID: "r2", Name: "Callback", IsDefault: true}}

	got, err := ValidateWrapUp(" r1 ", reasons)
	require.NoError(t, err)
	assert.Equal(t, "Resolved", got.Name)

	_, err = ValidateWrapUp("", reasons)
	require.ErrorIs(t, err, ErrNoWrapUpReason)

	_, err = ValidateWrapUp("r9", reasons)
	require.ErrorIs(t, err, ErrUnknownWrapUpReason)

	def, ok := DefaultWrapUpReason(reasons)
	assert.True(t, ok)
	assert.Equal(t, "r2", def.ID)

	_, ok = DefaultWrapUpReason(nil)
	assert.False(t, ok)
}

func TestKeypad(t *testing.T) {
	var k Keypad

	assert.False(t, k.Press("a"))
	for _, key := range []string{"+", "1", "4", "1", "5"} {
		require.True(t, k.Press(key))
	}
	assert.Equal(t, "+1415", k.Number())
	assert.True(t, k.Valid())

	k.Backspace()
	k.Backspace()
	k.Backspace()
	assert.Equal(t, "+1", k.Number())
	assert.False(t, k.Valid())

	k.SetNumber("(415) 555-1234")
	assert.Equal(t, "4155551234", k.Number())
	assert.True(t, k.Valid())

	k.SetNumber("123456789012345678901234")
	assert.Len(t, k.Number(), maxDialDigits)
	assert.False(t, k.Press("1"))

	k.Clear()
	assert.Empty(t, k.Number())
	k.Backspace()
	assert.Empty(t, k.Number())
}

func TestKeypadANI(t *testing.T) {
	var k Keypad
	options := []ANIOption{{Number: "+18005550100", Name: "Support line"}}

	assert.True(t, k.SelectANI("+18005550100", options))
	assert.Equal(t, "+18005550100", k.ANI())
	assert.False(t, k.SelectANI("+19995550000", options))
	assert.Equal(t, "+18005550100", k.ANI())
	assert.True(t, k.SelectANI("", options))
	assert.Empty(t, k.ANI())
}
