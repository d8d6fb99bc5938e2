package callcontrol

import (
	"github.com/rs/zerolog"
)

// MediaType is the channel of the current task.
type MediaType string

// Media types reported by the task SDK.
const (
	MediaTelephony MediaType = "telephony"
	MediaChat      MediaType = "chat"
	MediaEmail     MediaType = "email"
	MediaSocial    MediaType = "social"
)

// ButtonID identifies a call-control button.
type ButtonID string

// Call-control buttons in display order.
const (
	ButtonMute       ButtonID = "mute"
	ButtonHold       ButtonID = "hold"
	ButtonConsult    ButtonID = "consult"
	ButtonTransfer   ButtonID = "transfer"
	ButtonConference ButtonID = "conference"
	ButtonRecord     ButtonID = "record"
	ButtonEnd        ButtonID = "end"
	ButtonWrapUp     ButtonID = "wrapup"
)

// TaskState is the snapshot of the current task used to configure buttons.
type TaskState struct {
	Media             MediaType
	Connected         bool
	Held              bool
	Muted             bool
	Recording         bool
	RecordingPaused   bool
	ConsultInProgress bool
	ConsultConnected  bool
	Participants      int
	WrapUpRequired    bool
	EndCallEnabled    bool
}

// Button is one configured call-control button.
type Button struct {
	ID       ButtonID
	Label    string
	Visible  bool
	Disabled bool
	Active   bool
}

// Buttons computes the call-control bar for state. Telephony-only buttons are
// hidden for digital channels, and everything but wrap-up is hidden once the
// task is waiting for a wrap-up reason.
func Buttons(state TaskState, logger zerolog.Logger) []Button {
	buttons, err := buildButtons(state)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build call control buttons")
		return []Button{}
	}
	return buttons
}

func buildButtons(state TaskState) (buttons []Button, err error) {
	defer func() {
		if r := recover(); r != nil {
			buttons, err = nil, panicError(r)
		}
	}()

	voice := state.Media == MediaTelephony
	live := state.Connected && !state.WrapUpRequired
	conferencing := state.Participants > 2 //nolint:mnd // Agent plus customer is not a conference.

	muteLabel := "Mute"
	if state.Muted {
		muteLabel = "Unmute"
	}
	holdLabel := "Hold"
	if state.Held {
		holdLabel = "Resume"
	}
	recordLabel := "Pause recording"
	if state.RecordingPaused {
		recordLabel = "Resume recording"
	}
	endLabel := "End"
	if !voice {
		endLabel = "End " + string(state.Media)
	}

	buttons = []Button{
		{ID: ButtonMute, Label: muteLabel, Visible: voice && live, Active: state.Muted,
			Disabled: state.Held},
		{ID: ButtonHold, Label: holdLabel, Visible: voice && live, Active: state.Held,
			Disabled: state.ConsultInProgress},
		{ID: ButtonConsult, Label: "Consult", Visible: voice && live && !state.ConsultInProgress,
			Disabled: conferencing},
		{ID: ButtonTransfer, Label: "Transfer", Visible: live},
		{ID: ButtonConference, Label: "Conference", Visible: voice && live && state.ConsultConnected},
		{ID: ButtonRecord, Label: recordLabel, Visible: voice && live && state.Recording,
			Active: state.RecordingPaused},
		{ID: ButtonEnd, Label: endLabel, Visible: live,
			Disabled: voice && (state.Held || !state.EndCallEnabled)},
		{ID: ButtonWrapUp, Label: "Wrap up", Visible: state.WrapUpRequired},
	}
	return buttons, nil
}

// VisibleButtons filters the visible buttons.
func VisibleButtons(buttons []Button) []Button {
	out := make([]Button, 0, len(buttons))
	for _, b := range buttons {
		if b.Visible {
			out = append(out, b)
		}
	}
	return out
}
