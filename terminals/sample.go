package terminals

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// SampleBall draws n points inside the ball of the given radius centred at
// the origin. Radius, azimuth and elevation are each uniform, so points
// cluster toward the centre.
func SampleBall(rng *rand.Rand, radius float64, n int) ([]r3.Vec, error) {
	if err := check(radius, n); err != nil {
		return nil, err
	}
	pts := make([]r3.Vec, n)
	for i := range pts {
		r := rng.Float64() * radius
		azimuth := rng.Float64() * 2 * math.Pi
		elevation := rng.Float64() * math.Pi
		pts[i] = r3.Vec{
			X: r * math.Sin(elevation) * math.Cos(azimuth),
			Y: r * math.Sin(elevation) * math.Sin(azimuth),
			Z: r * math.Cos(elevation),
		}
	}

	return pts, nil
}

// FibonacciSphere returns n points spread evenly over the sphere of the given
// radius, from the north pole southwards along a golden-angle spiral.
func FibonacciSphere(radius float64, n int) []r3.Vec {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []r3.Vec{{Z: radius}}
	}
	golden := math.Pi * (3 - math.Sqrt(5))
	pts := make([]r3.Vec, n)
	for i := range pts {
		z := 1 - 2*float64(i)/float64(n-1)
		ring := math.Sqrt(math.Max(0, 1-z*z))
		theta := golden * float64(i)
		pts[i] = r3.Scale(radius, r3.Vec{X: ring * math.Cos(theta), Y: ring * math.Sin(theta), Z: z})
	}

	return pts
}

func check(radius float64, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if !(radius > 0) || math.IsInf(radius, 1) {
		return fmt.Errorf("%w: %g", ErrInvalidRadius, radius)
	}

	return nil
}
