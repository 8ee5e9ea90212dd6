package chart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPiecesContiguousAndCovering(t *testing.T) {
	cases := []struct {
		min, max float64
		ranges   int
	}{
		{1, 100, 10},
		{0, 3, 10},
		{7, 1234, 3},
		{0.5, 0.6, 7},
		{2, 3, 1},
	}

	for _, c := range cases {
		pieces := NewPieces(c.min, c.max, c.ranges)
		assert.Equal(t, c.ranges, len(pieces))
		assert.Equal(t, c.min, *pieces[0].Min, "first lower bound")
		assert.Nil(t, pieces[len(pieces)-1].Max, "last piece is open")

		for i := 1; i < len(pieces); i++ {
			assert.NotNil(t, pieces[i-1].Max)
			assert.Equal(t, *pieces[i-1].Max, *pieces[i].Min, "contiguous")
			assert.True(t, *pieces[i-1].Min < *pieces[i].Min, "ordered")
		}

		for _, v := range []float64{c.min, (c.min + c.max) / 2, c.max} {
			n := 0
			for _, p := range pieces {
				if p.Contains(v) {
					n++
				}
			}
			assert.Equal(t, 1, n, "value %v in exactly one piece", v)
		}
	}
}

func TestNewPiecesColors(t *testing.T) {
	pieces := NewPieces(0, 100, 10)
	assert.Equal(t, "#ee9678", pieces[0].Color)
	assert.Equal(t, "#b72d28", pieces[9].Color)
}

func TestNewPiecesZeroStep(t *testing.T) {
	pieces := NewPieces(5, 5, 10)
	assert.Equal(t, 1, len(pieces))
	assert.Equal(t, float64(5), *pieces[0].Min)
	assert.Nil(t, pieces[0].Max)
	assert.True(t, pieces[0].Contains(5))
}

func TestNewPiecesDefaultRanges(t *testing.T) {
	assert.Equal(t, DefaultRanges, len(NewPieces(0, 10, 0)))
	assert.Equal(t, DefaultRanges, len(NewPieces(0, 10, -3)))
}

func TestDefaultPiecesBuckets(t *testing.T) {
	pieces := DefaultPieces()
	cases := map[float64]string{
		3000: ">=1000",
		1000: ">=1000",
		999:  "100-999",
		200:  "100-999",
		10:   "10-99",
		1:    "1-9",
		0:    "0",
	}
	for v, label := range cases {
		p, ok := pieces.Find(v)
		assert.True(t, ok)
		assert.Equal(t, label, p.Label, "value %v", v)
	}
}

func TestVisualMapJSON(t *testing.T) {
	s, err := DefaultPieces().VisualMapJSON()
	assert.NoError(t, err)

	var v struct {
		Type   string                   `json:"type"`
		Show   bool                     `json:"show"`
		Pieces []map[string]interface{} `json:"pieces"`
	}
	assert.NoError(t, json.Unmarshal([]byte(s), &v))
	assert.Equal(t, "piecewise", v.Type)
	assert.False(t, v.Show)
	assert.Equal(t, 5, len(v.Pieces))

	_, hasUpper := v.Pieces[0]["lt"]
	assert.False(t, hasUpper)
	assert.Equal(t, float64(1000), v.Pieces[0]["gte"])

	_, hasLower := v.Pieces[4]["gte"]
	assert.False(t, hasLower)
	assert.Equal(t, float64(1), v.Pieces[4]["lt"])
}
