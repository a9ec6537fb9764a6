package nakshatra_test

import (
	"fmt"

	"github.com/rsharan/jyotish/pkg/nakshatra"
)

func ExampleResolve() {
	info := nakshatra.Resolve(95.5)
	fmt.Printf("%s pada %d, ruled by %s\n", info.Name, info.Pada, info.Lord)
	// Output:
	// Pushya pada 1, ruled by Saturn
}

func ExampleResolve_boundary() {
	// 0° is the start of Ashwini; exactly one span later Bharani begins.
	fmt.Println(nakshatra.Resolve(0).Name)
	fmt.Println(nakshatra.Resolve(nakshatra.Span).Name)
	// Output:
	// Ashwini
	// Bharani
}
