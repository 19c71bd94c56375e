package nav

import "fmt"

// CommandKind enumerates reader commands.
type CommandKind int

const (
	ToggleMenu CommandKind = iota
	ChapterPrev
	ChapterNext
	ScrollUp
	ScrollDown
	AppendMenuChar
	Quit
)

var commandNames = [...]string{
	ToggleMenu:     "toggle-menu",
	ChapterPrev:    "chapter-prev",
	ChapterNext:    "chapter-next",
	ScrollUp:       "scroll-up",
	ScrollDown:     "scroll-down",
	AppendMenuChar: "append-menu-char",
	Quit:           "quit",
}

func (k CommandKind) String() string {
	if k >= 0 && int(k) < len(commandNames) {
		return commandNames[k]
	}
	return fmt.Sprintf("command(%d)", int(k))
}

// Command is a CommandKind plus the typed rune for AppendMenuChar.
type Command struct {
	Kind CommandKind
	Char rune
}

// Do builds a command that carries no character.
func Do(kind CommandKind) Command { return Command{Kind: kind} }

// Type builds an AppendMenuChar command.
func Type(c rune) Command { return Command{Kind: AppendMenuChar, Char: c} }
