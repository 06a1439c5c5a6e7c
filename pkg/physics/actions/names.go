package actions

import (
	"fmt"
	"strings"

	opt "github.com/repeale/fp-go/option"
)

var NAMES = []struct {
	Name string
	Flag Flags
}{
	{"turn-left", TURNING_LEFT},
	{"turn-right", TURNING_RIGHT},
	{"sidestep-modifier", SIDESTEP_DONT_TURN},
	{"look-left", LOOKING_LEFT},
	{"look-right", LOOKING_RIGHT},
	{"look-up", LOOKING_UP},
	{"look-down", LOOKING_DOWN},
	{"look-center", LOOKING_CENTER},
	{"look-modifier", LOOK_DONT_TURN},
	{"forward", MOVING_FORWARD},
	{"backward", MOVING_BACKWARD},
	{"run", RUN_DONT_WALK},
	{"sidestep-left", SIDESTEPPING_LEFT},
	{"sidestep-right", SIDESTEPPING_RIGHT},
	{"swim", SWIM},
	{"left-trigger", LEFT_TRIGGER},
	{"right-trigger", RIGHT_TRIGGER},
	{"action", ACTION_TRIGGER},
	{"cycle-forward", CYCLE_WEAPONS_FORWARD},
	{"cycle-backward", CYCLE_WEAPONS_BACKWARD},
	{"map", TOGGLE_MAP},
}

func Lookup(name string) opt.Option[Flags] {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, entry := range NAMES {
		if entry.Name == name {
			return opt.Some(entry.Flag)
		}
	}
	return opt.None[Flags]()
}

// Parse combines named actions into a single word.
func Parse(names []string) (Flags, error) {
	var flags Flags
	for _, name := range names {
		flag := Lookup(name)
		if opt.IsNone(flag) {
			return 0, fmt.Errorf("unknown action %q", name)
		}
		flags |= flag.Value
	}
	return flags, nil
}

// Names lists the named key actions in a word. Absolute axes are skipped.
func (f Flags) Names() []string {
	var names []string
	for _, entry := range NAMES {
		if !f.Has(entry.Flag) {
			continue
		}

		switch {
		case entry.Flag&ABSOLUTE_YAW_MASK != 0 && f.Has(ABSOLUTE_YAW_MODE):
			continue
		case entry.Flag&ABSOLUTE_PITCH_MASK != 0 && f.Has(ABSOLUTE_PITCH_MODE):
			continue
		case entry.Flag&ABSOLUTE_POSITION_MASK != 0 && f.Has(ABSOLUTE_POSITION_MODE):
			continue
		}

		names = append(names, entry.Name)
	}
	return names
}

func (f Flags) String() string {
	names := f.Names()
	intent := Decode(f)

	if yaw, ok := intent.Yaw.(AbsoluteYaw); ok {
		names = append(names, fmt.Sprintf("yaw=%d", yaw.Code))
	}
	if pitch, ok := intent.Pitch.(AbsolutePitch); ok {
		names = append(names, fmt.Sprintf("pitch=%d", pitch.Code))
	}
	if position, ok := intent.Position.(AbsolutePosition); ok {
		names = append(names, fmt.Sprintf("position=%d", position.Code))
	}

	return strings.Join(names, "|")
}
