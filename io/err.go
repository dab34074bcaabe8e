package io

import (
	"errors"

	"github.com/ezrec/redstone/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull = errors.New(f("channel full"))
)

type ErrTapeValue string

func (err ErrTapeValue) Error() string {
	return f("tape value '%v' is not a 16-bit number", string(err))
}
