package callcontrol

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrUnknownAction is logged when an action id has no slot in Actions.
var ErrUnknownAction = errors.New("unknown call control action")

// ActionFunc is an opaque task action supplied by the host.
type ActionFunc func() error

// Actions holds the task actions wired by the host. Any of them may be nil.
type Actions struct {
	Mute       ActionFunc
	Unmute     ActionFunc
	Hold       ActionFunc
	Resume     ActionFunc
	Consult    ActionFunc
	Transfer   ActionFunc
	Conference ActionFunc
	Record     ActionFunc
	End        ActionFunc
	WrapUp     ActionFunc

	Logger zerolog.Logger
}

func (a Actions) lookup(id ButtonID, state TaskState) (ActionFunc, error) {
	switch id {
	case ButtonMute:
		if state.Muted {
			return a.Unmute, nil
		}
		return a.Mute, nil
	case ButtonHold:
		if state.Held {
			return a.Resume, nil
		}
		return a.Hold, nil
	case ButtonConsult:
		return a.Consult, nil
	case ButtonTransfer:
		return a.Transfer, nil
	case ButtonConference:
		return a.Conference, nil
	case ButtonRecord:
		return a.Record, nil
	case ButtonEnd:
		return a.End, nil
	case ButtonWrapUp:
		return a.WrapUp, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, id)
}

// Invoke runs the action behind button id. The call is always logged; a
// missing action is a no-op and action errors or panics are logged, never
// returned. It reports whether an action ran successfully.
func (a Actions) Invoke(id ButtonID, state TaskState) (ok bool) {
	logger := a.Logger.With().Str("action", string(id)).Logger()

	fn, err := a.lookup(id, state)
	if err != nil {
		logger.Error().Err(err).Msg("call control action rejected")
		return false
	}
	logger.Info().Bool("wired", fn != nil).Msg("call control action")
	if fn == nil {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Err(panicError(r)).Msg("call control action panicked")
			ok = false
		}
	}()
	if err := fn(); err != nil {
		logger.Error().Err(err).Msg("call control action failed")
		return false
	}
	return true
}

func panicError(r any) error {
	if err, isErr := r.(error); isErr {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", r)
}
