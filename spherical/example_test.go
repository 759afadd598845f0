package spherical_test

import (
	"fmt"

	"github.com/katalvlaran/geomesh/geo"
	"github.com/katalvlaran/geomesh/spherical"
)

// ExampleExcess measures the octant bounded by the north pole, the prime
// meridian and the 90°E meridian.
func ExampleExcess() {
	pole, origin, east := geo.New(90, 0), geo.New(0, 0), geo.New(0, 90)

	fmt.Printf("edge %.1f km\n", spherical.Distance(origin, east))
	fmt.Printf("excess %.4f sr\n", spherical.Excess(pole, origin, east))
	fmt.Println("contains (30,45):", spherical.Contains(geo.New(30, 45), pole, origin, east))
	fmt.Println("contains (-30,45):", spherical.Contains(geo.New(-30, 45), pole, origin, east))

	// Output:
	// edge 10007.5 km
	// excess 1.5708 sr
	// contains (30,45): true
	// contains (-30,45): false
}
