package battleship

import (
	"github.com/dolthub/swiss"
	cerr "github.com/saeidalz13/battleship-offline/internal/error"
)

// Shooter picks the next coordinates to fire at.
type Shooter interface {
	Shoot() (Coordinates, error)
}

// RandomOpponent fires uniformly at coordinates in [min, max] on both
// axes and never repeats itself. It knows the bounds only, never the
// board it shoots at.
type RandomOpponent struct {
	min   int
	max   int
	rng   RandomSource
	fired *swiss.Map[Coordinates, struct{}]
}

var _ Shooter = (*RandomOpponent)(nil)

func NewRandomOpponent(minCoord, maxCoord int, rng RandomSource) *RandomOpponent {
	span := 0
	if maxCoord >= minCoord {
		span = maxCoord - minCoord + 1
	}

	return &RandomOpponent{
		min:   minCoord,
		max:   maxCoord,
		rng:   rng,
		fired: swiss.NewMap[Coordinates, struct{}](uint32(max(span*span, 1))),
	}
}

func (o *RandomOpponent) span() int {
	if o.max < o.min {
		return 0
	}
	return o.max - o.min + 1
}

func (o *RandomOpponent) Remaining() int {
	span := o.span()
	return span*span - o.fired.Count()
}

// Shoot draws the k-th unused pair in row-major order, k uniform over
// what is left, so every call ends in bounded time.
func (o *RandomOpponent) Shoot() (Coordinates, error) {
	remaining := o.Remaining()
	if remaining <= 0 {
		return Coordinates{}, cerr.ErrNoCoordinatesLeft(o.min, o.max)
	}

	k := o.rng.Intn(remaining)
	for x := o.min; x <= o.max; x++ {
		for y := o.min; y <= o.max; y++ {
			c := NewCoordinates(x, y)
			if o.fired.Has(c) {
				continue
			}
			if k == 0 {
				o.fired.Put(c, struct{}{})
				return c, nil
			}
			k--
		}
	}

	// unreachable while Remaining agrees with the fired set
	return Coordinates{}, cerr.ErrNoCoordinatesLeft(o.min, o.max)
}
