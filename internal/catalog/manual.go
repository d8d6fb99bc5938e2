package catalog

import (
	"regexp"
	"strings"
)

// DialNumberPattern is the accepted format for manually typed dial numbers.
const DialNumberPattern = `^[+1][0-9]{3,18}$|^[*#:][+1][0-9*#:]{3,18}$|^[0-9*#:]{3,18}$`

//nolint:gochecknoglobals // Compiled once.
var dialNumberRE = regexp.MustCompile(DialNumberPattern)

// IsValidDialNumber reports whether s matches DialNumberPattern.
func IsValidDialNumber(s string) bool {
	return dialNumberRE.MatchString(s)
}

// ManualAction is the extra "select what I typed" row offered by the picker.
type ManualAction struct {
	Visible bool
	Title   string
	ID      string
	Name    string
}

// ManualEntry validates free text typed in the search box for categories that
// accept targets outside the loaded list. Dial Number accepts any valid
// number; Entry Point accepts an exact name or id of a known entry point.
func ManualEntry(c Category, text string, entryPoints []EntryPoint) ManualAction {
	return guard("ManualEntry", ManualAction{}, func() ManualAction {
		value := strings.TrimSpace(text)
		if value == "" {
			return ManualAction{}
		}

		switch c {
		case CategoryDialNumber:
			if !IsValidDialNumber(value) {
				return ManualAction{}
			}
			return ManualAction{Visible: true, Title: value, ID: value, Name: value}

		case CategoryEntryPoint:
			for _, ep := range entryPoints {
				if ep.Name == value || ep.ID == value {
					return ManualAction{Visible: true, Title: ep.Name, ID: ep.ID, Name: ep.Name}
				}
			}
			return ManualAction{}

		case CategoryAgents, CategoryQueues:
			return ManualAction{}
		}
		return ManualAction{}
	})
}
