package debugui

import (
	"testing"

	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/space"
	"github.com/stretchr/testify/assert"
)

func TestHistory(t *testing.T) {
	h := NewHistory(4)
	assert.Equal(t, float32(0), h.Avg())
	assert.Equal(t, []float32{0, 0, 0, 0}, h.Values())

	h.Push(1)
	h.Push(2)
	assert.Equal(t, []float32{0, 0, 1, 2}, h.Values())
	assert.Equal(t, float32(1.5), h.Avg())
	assert.Equal(t, 2, h.Len())

	for _, v := range []float32{3, 4, 5} {
		h.Push(v)
	}
	assert.Equal(t, []float32{2, 3, 4, 5}, h.Values())
	assert.Equal(t, float32(3.5), h.Avg())
	assert.Equal(t, 4, h.Len())

	assert.Len(t, NewHistory(0).Values(), 1)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "-", describe[space.Vec2](nil))

	p := &piece.Piece[space.Vec2]{Kind: space.T, Anchor: space.Vec2{Row: 2, Col: 3}}
	assert.Equal(t, "T at {2 3} rot [0 0 0]", describe(p))
}
