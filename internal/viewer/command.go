package viewer

import (
	"strconv"
	"strings"
)

type Action int

const (
	ActionNone Action = iota
	ActionFlip
	ActionNext
	ActionPrev
	ActionRandom
	ActionJump
	ActionQuit
)

// Command is one parsed line of viewer input. Target is the 1-based card
// number for ActionJump.
type Command struct {
	Action Action
	Target int
}

var literals = map[string]Action{
	"f":      ActionFlip,
	"flip":   ActionFlip,
	"n":      ActionNext,
	"next":   ActionNext,
	"p":      ActionPrev,
	"prev":   ActionPrev,
	"r":      ActionRandom,
	"random": ActionRandom,
	"q":      ActionQuit,
	"quit":   ActionQuit,
}

// ParseCommand interprets one input line. Matchers run in priority order:
// exact literals, then "j"/"jump" with an embedded number, then a bare card
// number. Anything else, including jump targets with no digits, is
// ActionNone; the grammar never produces errors.
func ParseCommand(line string) Command {
	cmd := strings.TrimLeft(line, " \t")
	if cmd == "" {
		return Command{Action: ActionNone}
	}

	if action, ok := literals[cmd]; ok {
		return Command{Action: action}
	}

	// "j 3", "jump 5". Digits are scavenged from anywhere in the line.
	if len(cmd) > 2 && (cmd[0] == 'j' || strings.HasPrefix(cmd, "jump")) {
		var num strings.Builder
		for _, c := range cmd {
			if (c >= '0' && c <= '9') || c == '-' {
				num.WriteRune(c)
			}
		}
		if target, err := strconv.Atoi(num.String()); err == nil {
			return Command{Action: ActionJump, Target: target}
		}
		return Command{Action: ActionNone}
	}

	if target, err := strconv.Atoi(cmd); err == nil {
		return Command{Action: ActionJump, Target: target}
	}

	return Command{Action: ActionNone}
}
