//go:build !verify_refraction

package eye

// Empty stub that will be optimized out
func verifySnellLaw(n1, n2, incident, refracted float64) {}
