package attmath

// Angle and rate unit conversion factors.
const (
	// TwoPi is 2π.
	TwoPi = 6.283185307179586476925287

	// Rad2Deg converts radians to degrees.
	Rad2Deg = 57.29577951308232087679815

	// Deg2Rad converts degrees to radians.
	Deg2Rad = 1.745329251994329576923691e-2

	// Rpm2Rad converts revolutions per minute to rad/s.
	Rpm2Rad = TwoPi / 60.0

	// Rad2Rpm converts rad/s to revolutions per minute.
	Rad2Rpm = 60.0 / TwoPi

	// Rad2As converts radians to arcseconds.
	Rad2As = 206264.8062470963551564734

	// As2Rad converts arcseconds to radians.
	As2Rad = 4.848136811095359935899141e-6
)

// Degrees converts each of the given angles from radians to degrees.
func Degrees(angles [3]float64) [3]float64 {
	return [3]float64{angles[0] * Rad2Deg, angles[1] * Rad2Deg, angles[2] * Rad2Deg}
}

// Radians converts each of the given angles from degrees to radians.
func Radians(angles [3]float64) [3]float64 {
	return [3]float64{angles[0] * Deg2Rad, angles[1] * Deg2Rad, angles[2] * Deg2Rad}
}
