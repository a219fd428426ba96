package component

// Intent is the per-tick input snapshot for the player paddle
type Intent struct {
	Up       bool
	Down     bool
	Forward  bool
	Backward bool

	// Pause toggles the pause state when set
	Pause bool
}

// Moving reports whether any movement flag is active
func (i Intent) Moving() bool {
	return i.Up || i.Down || i.Forward || i.Backward
}

// Packed encodes the intent into a bit set for compact recording
func (i Intent) Packed() uint8 {
	var b uint8
	if i.Up {
		b |= 1 << 0
	}
	if i.Down {
		b |= 1 << 1
	}
	if i.Forward {
		b |= 1 << 2
	}
	if i.Backward {
		b |= 1 << 3
	}
	if i.Pause {
		b |= 1 << 4
	}
	return b
}

// UnpackIntent is the inverse of Intent.Packed
func UnpackIntent(b uint8) Intent {
	return Intent{
		Up:       b&(1<<0) != 0,
		Down:     b&(1<<1) != 0,
		Forward:  b&(1<<2) != 0,
		Backward: b&(1<<3) != 0,
		Pause:    b&(1<<4) != 0,
	}
}
