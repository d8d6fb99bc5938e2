package callcontrol

import (
	"strings"

	"github.com/rshade/agentdesk/internal/catalog"
)

// maxDialDigits bounds the keypad buffer to the longest valid dial string.
const maxDialDigits = 20

// KeypadKeys are the keys of the outdial keypad in layout order.
//
//nolint:gochecknoglobals // Fixed keypad layout.
var KeypadKeys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "*", "0", "#"}

// ANIOption is an outbound caller id the agent may present.
type ANIOption struct {
	Number string `json:"number" yaml:"number"`
	Name   string `json:"name"   yaml:"name"`
}

// Keypad is the outdial number entry.
type Keypad struct {
	number string
	ani    string
}

func validKey(key string) bool {
	if key == "+" {
		return true
	}
	for _, k := range KeypadKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Press appends key. Unknown keys and input past the maximum length are ignored.
func (k *Keypad) Press(key string) bool {
	if !validKey(key) || len(k.number) >= maxDialDigits {
		return false
	}
	k.number += key
	return true
}

// SetNumber replaces the buffer with the keypad characters of s.
func (k *Keypad) SetNumber(s string) {
	var b strings.Builder
	for _, r := range s {
		if b.Len() >= maxDialDigits {
			break
		}
		if validKey(string(r)) {
			b.WriteRune(r)
		}
	}
	k.number = b.String()
}

// Backspace removes the last character.
func (k *Keypad) Backspace() {
	if k.number != "" {
		k.number = k.number[:len(k.number)-1]
	}
}

// Clear empties the buffer.
func (k *Keypad) Clear() {
	k.number = ""
}

// Number returns the typed number.
func (k *Keypad) Number() string {
	return k.number
}

// Valid reports whether the typed number can be dialed.
func (k *Keypad) Valid() bool {
	return catalog.IsValidDialNumber(k.number)
}

// SelectANI picks the caller id to present. An empty number selects the
// default ANI; a number not in options is rejected.
func (k *Keypad) SelectANI(number string, options []ANIOption) bool {
	if number == "" {
		k.ani = ""
		return true
	}
	for _, o := range options {
		if o.Number == number {
			k.ani = number
			return true
		}
	}
	return false
}

// ANI returns the selected caller id, empty for the default.
func (k *Keypad) ANI() string {
	return k.ani
}
