package cli

import "strings"

// Command identifies a menu action parsed from the operator's input token.
// Parsing is separated from dispatch so each action handler can be tested
// directly.
type Command int

const (
	CommandUnknown Command = iota
	CommandExit
	CommandListMissions
	CommandGetMission
	CommandCountMissions
	CommandCreateAccount
	CommandUpdatePassword
	CommandDeleteAccount
)

// ParseCommand maps a raw menu token to a Command. Anything that is not one
// of the numbered menu entries parses as CommandUnknown.
func ParseCommand(token string) Command {
	switch strings.TrimSpace(token) {
	case "0":
		return CommandExit
	case "1":
		return CommandListMissions
	case "2":
		return CommandGetMission
	case "3":
		return CommandCountMissions
	case "4":
		return CommandCreateAccount
	case "5":
		return CommandUpdatePassword
	case "6":
		return CommandDeleteAccount
	default:
		return CommandUnknown
	}
}
