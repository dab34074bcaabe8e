package machine

const (
	SCREEN_WIDTH  = 64
	SCREEN_HEIGHT = 64
)

// Grid is a lamp grid, indexed [x][y].
type Grid [SCREEN_WIDTH][SCREEN_HEIGHT]bool

// Display is the lamp display: the committed Screen, and the pending Buffer
// that screen operations draw into.
type Display struct {
	Screen Grid
	Buffer Grid
}

// Position is a lamp location.
type Position struct {
	X int
	Y int
}

// DecodePosition decodes a screen position register value: x from bits
// 0-5, y from bits 8-13.
func DecodePosition(value int16) Position {
	v := uint16(value)
	return Position{
		X: int(v & 0x3f),
		Y: int((v >> 8) & 0x3f),
	}
}

// Encode returns the screen position register value for the position.
func (pos Position) Encode() int16 {
	return int16(uint16(pos.X&0x3f) | (uint16(pos.Y&0x3f) << 8))
}

// Reset clears both the screen and the buffer.
func (d *Display) Reset() {
	d.Screen = Grid{}
	d.Buffer = Grid{}
}

// Apply performs a screen operation at a position. Values other than the
// five screen operations have no effect, and report false.
func (d *Display) Apply(op ScreenOp, pos Position) (ok bool) {
	ok = true

	switch op {
	case SCREEN_OP_REFRESH:
		d.Screen = d.Buffer
	case SCREEN_OP_RESET:
		d.Buffer = Grid{}
	case SCREEN_OP_ON:
		d.Buffer[pos.X][pos.Y] = true
	case SCREEN_OP_TOGGLE:
		d.Buffer[pos.X][pos.Y] = !d.Buffer[pos.X][pos.Y]
	case SCREEN_OP_OFF:
		d.Buffer[pos.X][pos.Y] = false
	default:
		ok = false
	}

	return
}

// Lamp returns the combined state of a lamp: bit 0 is set if lit on the
// screen, bit 1 if lit in the buffer.
func (d *Display) Lamp(x, y int) (lamp int) {
	if d.Screen[x][y] {
		lamp |= 1
	}
	if d.Buffer[x][y] {
		lamp |= 2
	}
	return
}
