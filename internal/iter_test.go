package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Sorted(t *testing.T) {
	assert := assert.New(t)

	var keys []string
	var values []int
	for key, value := range IterSeq2Sorted(map[string]int{"b": 2, "c": 3, "a": 1}) {
		keys = append(keys, key)
		values = append(values, value)
	}

	assert.Equal([]string{"a", "b", "c"}, keys)
	assert.Equal([]int{1, 2, 3}, values)
}

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Concat(
		IterSeq2Sorted(map[string]int{"x": 1, "y": 2}),
		maps.All(map[string]int{}),
		IterSeq2Sorted(map[string]int{"a": 3}),
	)

	var keys []string
	for key := range seq {
		keys = append(keys, key)
	}
	assert.Equal([]string{"x", "y", "a"}, keys)

	keys = nil
	for key := range seq {
		keys = append(keys, key)
		if key == "y" {
			break
		}
	}
	assert.Equal([]string{"x", "y"}, keys)

	count := 0
	for range IterSeq2Concat[string, int]() {
		count++
	}
	assert.Equal(0, count)
}
