//go:build !386 && !amd64 && !arm64

package fp

func init() {
	// Every other Go port rounds float64 operations to binary64, so the
	// add-and-subtract trick is exact.
	currentPath = RoundingToInt
	currentTarget = "generic"

	if IntCastEnv() {
		currentPath = RoundingIntCast
	}
}
