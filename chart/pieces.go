package chart

import (
	"encoding/json"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultRanges = 10

	pieceStartColor = "#EE9678"
	pieceEndColor   = "#B72D28"
)

var (
	startColor = mustHex(pieceStartColor)
	endColor   = mustHex(pieceEndColor)
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if nil != err {
		panic(err)
	}
	return c
}

// Piece - half-open range [Min, Max) shown in Color. A nil bound is unbounded.
type Piece struct {
	Min   *float64 `json:"gte,omitempty"`
	Max   *float64 `json:"lt,omitempty"`
	Label string   `json:"label,omitempty"`
	Color string   `json:"color"`
}

// Contains - whether v falls into the piece
func (p Piece) Contains(v float64) bool {
	if p.Min != nil && v < *p.Min {
		return false
	}
	if p.Max != nil && v >= *p.Max {
		return false
	}
	return true
}

type Pieces []Piece

// Find - the first piece containing v
func (ps Pieces) Find(v float64) (Piece, bool) {
	for _, p := range ps {
		if p.Contains(v) {
			return p, true
		}
	}
	return Piece{}, false
}

// VisualMapJSON - echarts visualMap option using the pieces, the legend stays
// hidden
func (ps Pieces) VisualMapJSON() (string, error) {
	b, err := json.Marshal(struct {
		Type   string `json:"type"`
		Show   bool   `json:"show"`
		Pieces Pieces `json:"pieces"`
	}{
		Type:   "piecewise",
		Show:   false,
		Pieces: ps,
	})
	if nil != err {
		return "", err
	}
	return string(b), nil
}

func float(v float64) *float64 {
	return &v
}

// NewPieces - split [min, max] into ranges equal pieces colored from light to
// dark. The last piece has no upper bound, so max always falls into it.
func NewPieces(min, max float64, ranges int) Pieces {
	if ranges <= 0 {
		ranges = DefaultRanges
	}

	if max <= min {
		return Pieces{{
			Min:   float(min),
			Label: fmt.Sprintf(">=%g", min),
			Color: endColor.Hex(),
		}}
	}

	step := (max - min) / float64(ranges)
	pieces := make(Pieces, 0, ranges)
	for i := 0; i < ranges; i++ {
		start := float64(i)*step + min
		p := Piece{
			Min:   float(start),
			Color: blend(i, ranges),
		}

		if i == ranges-1 {
			p.Label = fmt.Sprintf(">=%g", start)
		} else {
			end := float64(i+1)*step + min
			p.Max = float(end)
			p.Label = fmt.Sprintf("%g-%g", start, end)
		}

		pieces = append(pieces, p)
	}

	return pieces
}

func blend(i, n int) string {
	if n <= 1 {
		return startColor.Hex()
	}
	return startColor.BlendRgb(endColor, float64(i)/float64(n-1)).Clamped().Hex()
}

// DefaultPieces - fixed pieces of the country map
func DefaultPieces() Pieces {
	return Pieces{
		{Min: float(1000), Label: ">=1000", Color: "#450704"},
		{Min: float(100), Max: float(1000), Label: "100-999", Color: "#75140B"},
		{Min: float(10), Max: float(100), Label: "10-99", Color: "#AD2217"},
		{Min: float(1), Max: float(10), Label: "1-9", Color: "#DE605B"},
		{Max: float(1), Label: "0", Color: "#FFFEE7"},
	}
}
