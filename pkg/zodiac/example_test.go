package zodiac_test

import (
	"fmt"

	"github.com/rsharan/jyotish/pkg/zodiac"
)

func ExampleNormalize() {
	fmt.Println(zodiac.Normalize(365.25))
	fmt.Println(zodiac.Normalize(-30))
	// Output:
	// 5.25
	// 330
}

func ExampleSplit() {
	sign, within := zodiac.Split(125.5)
	fmt.Printf("%s %.1f\n", sign, within)
	// Output:
	// Leo 5.5
}

func ExampleDistance() {
	// The distance is always folded to the shorter arc.
	fmt.Println(zodiac.Distance(350, 10))
	fmt.Println(zodiac.Distance(100, 280))
	// Output:
	// 20
	// 180
}

func ExampleSign_Quality() {
	for _, s := range []zodiac.Sign{zodiac.Aries, zodiac.Taurus, zodiac.Gemini, zodiac.Cancer} {
		fmt.Printf("%s: %s\n", s, s.Quality())
	}
	// Output:
	// Aries: Movable
	// Taurus: Fixed
	// Gemini: Dual
	// Cancer: Movable
}
