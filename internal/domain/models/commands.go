package models

// CommandType enumerates the main menu actions.
type CommandType string

const (
	CommandAdd     CommandType = "add"
	CommandList    CommandType = "list"
	CommandRemove  CommandType = "remove"
	CommandExit    CommandType = "exit"
	CommandUnknown CommandType = "unknown"
)

// MenuSize is the number of selectable menu entries.
const MenuSize = 4

// ParseCommand maps the 1-based menu selection to a command.
func ParseCommand(choice int) CommandType {
	switch choice {
	case 1:
		return CommandAdd
	case 2:
		return CommandList
	case 3:
		return CommandRemove
	case 4:
		return CommandExit
	default:
		return CommandUnknown
	}
}
