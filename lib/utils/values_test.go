package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type color string

const (
	red   color = "red"
	green color = "green"
	blue  color = "blue"
)

func TestStringValues_PreservesOrder(t *testing.T) {
	got := StringValues([]color{green, red, blue})
	assert.Equal(t, []string{"green", "red", "blue"}, got)
}

func TestStringValues_Empty(t *testing.T) {
	assert.Empty(t, StringValues([]color{}))
}

func TestJsiiValues(t *testing.T) {
	got := JsiiValues([]color{red, blue})
	if assert.Len(t, *got, 2) {
		assert.Equal(t, "red", *(*got)[0])
		assert.Equal(t, "blue", *(*got)[1])
	}
}

func TestIsMember(t *testing.T) {
	members := []color{red, green}
	assert.True(t, IsMember(members, "green"))
	assert.False(t, IsMember(members, "blue"))
	assert.False(t, IsMember(members, "Green"))
}
