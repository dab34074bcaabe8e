package io

import (
	"bufio"
	"io"

	"github.com/ezrec/redstone/machine"
)

const (
	LAMP_OFF         = 0 // Dark on screen and in the buffer.
	LAMP_TURNING_OFF = 1 // Lit on screen, dark in the buffer.
	LAMP_TURNING_ON  = 2 // Dark on screen, lit in the buffer.
	LAMP_ON          = 3 // Lit on screen and in the buffer.
)

var lampText = [4]string{
	LAMP_OFF:         ".",
	LAMP_TURNING_OFF: "o",
	LAMP_TURNING_ON:  "+",
	LAMP_ON:          "#",
}

var lampAnsi = [4]string{
	LAMP_OFF:         "\033[38;5;236m██",
	LAMP_TURNING_OFF: "\033[38;5;94m██",
	LAMP_TURNING_ON:  "\033[38;5;178m██",
	LAMP_ON:          "\033[38;5;226m██",
}

const ansiReset = "\033[0m"

// Screen renders the lamp display as text. The display is drawn mirrored
// on both axes, with x = 0, y = 0 at the bottom right.
type Screen struct {
	Ansi bool // If set, draw coloured lamps with ANSI escapes.
}

// Render draws the display, one line per row.
func (sc *Screen) Render(w io.Writer, display *machine.Display) (err error) {
	bw := bufio.NewWriter(w)

	lamps := lampText
	if sc.Ansi {
		lamps = lampAnsi
	}

	for row := range machine.SCREEN_HEIGHT {
		y := machine.SCREEN_HEIGHT - 1 - row
		for col := range machine.SCREEN_WIDTH {
			x := machine.SCREEN_WIDTH - 1 - col
			bw.WriteString(lamps[display.Lamp(x, y)])
		}
		if sc.Ansi {
			bw.WriteString(ansiReset)
		}
		bw.WriteByte('\n')
	}

	err = bw.Flush()
	return
}
