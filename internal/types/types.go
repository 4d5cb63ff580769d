// README: Common identifier and coordinate types shared across modules.
package types

// ID is an opaque entity identifier (hex string from crypto/rand).
type ID string

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}
