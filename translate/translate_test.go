package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NotNil(Printer())
	assert.Same(Printer(), Printer())
	assert.Equal("line 3 'LA' bad", From("line %d '%v' %v", 3, "LA", "bad"))
}
