package host

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ScriptInput replays actions at fixed tick numbers.
//
// A script is a list of entries separated by whitespace or ';'. Each entry is
// TICK:ACTION[,ACTION...] where TICK counts polls starting at 1, e.g.
//
//	3:up 7:left 12:down,right 40:restart
type ScriptInput struct {
	byTick map[int][]core.Action
	tick   int
}

// ParseScript builds a ScriptInput from its text form.
func ParseScript(script string) (*ScriptInput, error) {
	in := &ScriptInput{byTick: make(map[int][]core.Action)}

	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	for _, entry := range fields {
		tickText, actionsText, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("host: script entry %q: missing ':'", entry)
		}
		tick, err := strconv.Atoi(tickText)
		if err != nil {
			return nil, fmt.Errorf("host: script entry %q: bad tick: %w", entry, err)
		}
		if tick < 1 {
			return nil, fmt.Errorf("host: script entry %q: tick must be at least 1", entry)
		}
		for _, name := range strings.Split(actionsText, ",") {
			a, ok := core.ParseAction(name)
			if !ok {
				return nil, fmt.Errorf("host: script entry %q: unknown action %q", entry, name)
			}
			in.byTick[tick] = append(in.byTick[tick], a)
		}
	}
	return in, nil
}

// Poll returns the actions scheduled for the next tick.
func (s *ScriptInput) Poll() []core.Action {
	s.tick++
	return s.byTick[s.tick]
}

// LastTick returns the highest tick with scheduled actions, or 0.
func (s *ScriptInput) LastTick() int {
	last := 0
	for t := range s.byTick {
		last = max(last, t)
	}
	return last
}
