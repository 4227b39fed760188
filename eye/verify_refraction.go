//go:build verify_refraction

package eye

import (
	"fmt"
	"math"
)

const sineEpsilon = 1e-9

func init() {
	fmt.Println("Refraction verification enabled.")
}

// n1 sin(theta1) is conserved across the boundary
func verifySnellLaw(n1, n2, incident, refracted float64) {
	if math.Abs(n1*math.Sin(incident)-n2*math.Sin(refracted)) > sineEpsilon {
		panic(fmt.Sprintf("Snell's law violated: n1=%v n2=%v incident=%v refracted=%v", n1, n2, incident, refracted))
	}
	if math.Signbit(incident) != math.Signbit(refracted) && incident != 0 && refracted != 0 {
		panic("Refracted ray crossed to the other side of the normal")
	}
}
