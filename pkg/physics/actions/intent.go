package actions

// YawControl is either YawKeys or AbsoluteYaw.
type YawControl interface {
	yawControl()
}

type YawKeys struct {
	Left  bool
	Right bool
	// Turning keys sidestep instead.
	SidestepModifier bool
	LookLeft         bool
	LookRight        bool
}

type AbsoluteYaw struct {
	Code int32
}

func (YawKeys) yawControl()     {}
func (AbsoluteYaw) yawControl() {}

func (k YawKeys) Turning() bool { return k.Left || k.Right }
func (k YawKeys) Looking() bool { return k.LookLeft || k.LookRight }

// PitchControl is either PitchKeys or AbsolutePitch.
type PitchControl interface {
	pitchControl()
}

type PitchKeys struct {
	Up     bool
	Down   bool
	Center bool
	// Movement keys look up and down instead.
	LookModifier bool
}

type AbsolutePitch struct {
	Code int32
}

func (PitchKeys) pitchControl()     {}
func (AbsolutePitch) pitchControl() {}

func (k PitchKeys) Looking() bool { return k.Up || k.Down }

// PositionControl is either PositionKeys or AbsolutePosition.
type PositionControl interface {
	positionControl()
}

type PositionKeys struct {
	Forward  bool
	Backward bool
}

type AbsolutePosition struct {
	Code int32
}

func (PositionKeys) positionControl()     {}
func (AbsolutePosition) positionControl() {}

func (k PositionKeys) Moving() bool { return k.Forward || k.Backward }

// Intent is a decoded action word.
type Intent struct {
	Yaw      YawControl
	Pitch    PitchControl
	Position PositionControl

	SidestepLeft  bool
	SidestepRight bool
	Run           bool
	Swim          bool

	Triggers Flags
	// Unassigned bits inside a key-driven axis. Kept so that Encode
	// reproduces the original word exactly.
	Spare Flags
}

func (i Intent) Sidestepping() bool {
	return i.SidestepLeft || i.SidestepRight
}

// YawKeys returns the yaw keys, or no keys if yaw is absolute.
func (i Intent) YawKeys() YawKeys {
	keys, _ := i.Yaw.(YawKeys)
	return keys
}

func (i Intent) PitchKeys() PitchKeys {
	keys, _ := i.Pitch.(PitchKeys)
	return keys
}

func (i Intent) PositionKeys() PositionKeys {
	keys, _ := i.Position.(PositionKeys)
	return keys
}

// Decode splits an action word into its controls.
func Decode(f Flags) Intent {
	intent := Intent{
		SidestepLeft:  f.Has(SIDESTEPPING_LEFT),
		SidestepRight: f.Has(SIDESTEPPING_RIGHT),
		Run:           f.Has(RUN_DONT_WALK),
		Swim:          f.Has(SWIM),
		Triggers:      f & TRIGGERS,
	}

	if f.Has(ABSOLUTE_YAW_MODE) {
		intent.Yaw = AbsoluteYaw{Code: GetAbsoluteYaw(f)}
	} else {
		intent.Yaw = YawKeys{
			Left:             f.Has(TURNING_LEFT),
			Right:            f.Has(TURNING_RIGHT),
			SidestepModifier: f.Has(SIDESTEP_DONT_TURN),
			LookLeft:         f.Has(LOOKING_LEFT),
			LookRight:        f.Has(LOOKING_RIGHT),
		}
		intent.Spare |= f & yawSpareBits
	}

	if f.Has(ABSOLUTE_PITCH_MODE) {
		intent.Pitch = AbsolutePitch{Code: GetAbsolutePitch(f)}
	} else {
		intent.Pitch = PitchKeys{
			Up:           f.Has(LOOKING_UP),
			Down:         f.Has(LOOKING_DOWN),
			Center:       f.Has(LOOKING_CENTER),
			LookModifier: f.Has(LOOK_DONT_TURN),
		}
		intent.Spare |= f & pitchSpareBits
	}

	if f.Has(ABSOLUTE_POSITION_MODE) {
		intent.Position = AbsolutePosition{Code: GetAbsolutePosition(f)}
	} else {
		intent.Position = PositionKeys{
			Forward:  f.Has(MOVING_FORWARD),
			Backward: f.Has(MOVING_BACKWARD),
		}
		intent.Spare |= f & positionSpareBits
	}

	return intent
}

func set(f *Flags, bits Flags, on bool) {
	if on {
		*f |= bits
	}
}

// Encode is the inverse of Decode.
func (i Intent) Encode() Flags {
	var f Flags

	switch yaw := i.Yaw.(type) {
	case AbsoluteYaw:
		f = SetAbsoluteYaw(f, yaw.Code)
	case YawKeys:
		set(&f, TURNING_LEFT, yaw.Left)
		set(&f, TURNING_RIGHT, yaw.Right)
		set(&f, SIDESTEP_DONT_TURN, yaw.SidestepModifier)
		set(&f, LOOKING_LEFT, yaw.LookLeft)
		set(&f, LOOKING_RIGHT, yaw.LookRight)
		f |= i.Spare & yawSpareBits
	}

	switch pitch := i.Pitch.(type) {
	case AbsolutePitch:
		f = SetAbsolutePitch(f, pitch.Code)
	case PitchKeys:
		set(&f, LOOKING_UP, pitch.Up)
		set(&f, LOOKING_DOWN, pitch.Down)
		set(&f, LOOKING_CENTER, pitch.Center)
		set(&f, LOOK_DONT_TURN, pitch.LookModifier)
		f |= i.Spare & pitchSpareBits
	}

	switch position := i.Position.(type) {
	case AbsolutePosition:
		f = SetAbsolutePosition(f, position.Code)
	case PositionKeys:
		set(&f, MOVING_FORWARD, position.Forward)
		set(&f, MOVING_BACKWARD, position.Backward)
		f |= i.Spare & positionSpareBits
	}

	set(&f, SIDESTEPPING_LEFT, i.SidestepLeft)
	set(&f, SIDESTEPPING_RIGHT, i.SidestepRight)
	set(&f, RUN_DONT_WALK, i.Run)
	set(&f, SWIM, i.Swim)
	f |= i.Triggers & TRIGGERS

	return f
}
