package lit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFromInt(t *testing.T) {
	assert.Equal(t, 12, NewFromInt(12).Var())
	assert.Equal(t, 12, NewFromInt(-12).Var())
}

func TestNot(t *testing.T) {
	assert.Equal(t, New(12, true), New(12, false).Not())
	assert.Equal(t, New(12, false), New(12, true).Not())
}

func TestSign(t *testing.T) {
	assert.True(t, New(12, true).Sign())
	assert.False(t, New(12, false).Sign())
}

func TestVar(t *testing.T) {
	assert.Equal(t, 23, New(23, false).Var())
	assert.Equal(t, 23, New(23, true).Var())
}

func TestInt(t *testing.T) {
	assert.Equal(t, 7, New(7, false).Int())
	assert.Equal(t, -7, New(7, true).Int())
}

func TestString(t *testing.T) {
	assert.Equal(t, "7", New(7, false).String())
	assert.Equal(t, "-7", New(7, true).String())
}
