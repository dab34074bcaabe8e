package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/redstone/machine"
)

func TestScreen_Render(t *testing.T) {
	assert := assert.New(t)

	var display machine.Display
	display.Apply(machine.SCREEN_OP_ON, machine.Position{X: 0, Y: 0})
	display.Apply(machine.SCREEN_OP_ON, machine.Position{X: 63, Y: 63})
	display.Apply(machine.SCREEN_OP_ON, machine.Position{X: 2, Y: 1})
	display.Apply(machine.SCREEN_OP_REFRESH, machine.Position{})
	display.Apply(machine.SCREEN_OP_OFF, machine.Position{X: 63, Y: 63})
	display.Apply(machine.SCREEN_OP_ON, machine.Position{X: 5, Y: 0})

	var buf bytes.Buffer
	screen := &Screen{}
	assert.NoError(screen.Render(&buf, &display))

	rows := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if !assert.Equal(machine.SCREEN_HEIGHT, len(rows)) {
		return
	}
	for _, row := range rows {
		assert.Equal(machine.SCREEN_WIDTH, len(row))
	}

	// Mirrored on both axes.
	assert.Equal(byte('o'), rows[0][0], "x=63 y=63 turning off")
	assert.Equal(byte('#'), rows[63][63], "x=0 y=0 on")
	assert.Equal(byte('#'), rows[62][61], "x=2 y=1 on")
	assert.Equal(byte('+'), rows[63][58], "x=5 y=0 turning on")
	assert.Equal(byte('.'), rows[0][1])
	assert.Equal(machine.SCREEN_WIDTH*machine.SCREEN_HEIGHT-4, strings.Count(buf.String(), "."))
}

func TestScreen_RenderAnsi(t *testing.T) {
	assert := assert.New(t)

	var display machine.Display
	display.Apply(machine.SCREEN_OP_ON, machine.Position{X: 63, Y: 63})

	var buf bytes.Buffer
	screen := &Screen{Ansi: true}
	assert.NoError(screen.Render(&buf, &display))

	rows := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(machine.SCREEN_HEIGHT, len(rows))
	assert.True(strings.HasPrefix(rows[0], lampAnsi[LAMP_TURNING_ON]))
	assert.True(strings.HasSuffix(rows[0], ansiReset))
	assert.Equal(machine.SCREEN_WIDTH, strings.Count(rows[1], "██"))
}
