// Package projection implements the planispheric (stereographic) projection
// used by every astrolabe part: celestial coordinates are projected from the
// celestial pole onto the plane of the equator, so circles of declination,
// altitude, and azimuth all map to circles on the plate.
//
// Conventions: plate coordinates are millimetres with the origin at the
// pivot, +y toward the top of the plate and +x to the right. Angles at the
// API boundary are degrees; right ascension is in hours.
package projection

import "math"

// Obliquity is the obliquity of the ecliptic in degrees (J2000).
const Obliquity = 23.4392911

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// DeclinationRadius returns the plate radius of the declination circle dec,
// given the radius assigned to the celestial equator. Projection is from the
// pole of the hemisphere opposite the observer, so on a southern instrument
// callers pass the negated declination.
func DeclinationRadius(dec, rEquator float64) float64 {
	return rEquator * math.Tan(Radians(90-dec)/2)
}

// Tropics returns the plate radii of the inner and outer tropic circles.
// The outer tropic bounds the climate and the rete.
func Tropics(rEquator float64) (inner, outer float64) {
	return DeclinationRadius(Obliquity, rEquator), DeclinationRadius(-Obliquity, rEquator)
}

// Almucantar returns the centre offset (along the meridian, toward the
// zenith) and radius of the circle of constant altitude alt for an observer
// at latitude lat. ok is false when the projected circle degenerates
// (sin(lat)+sin(alt) ~ 0), which happens for strongly negative altitudes at
// low latitudes.
func Almucantar(alt, lat, rEquator float64) (yCenter, radius float64, ok bool) {
	den := math.Sin(Radians(lat)) + math.Sin(Radians(alt))
	if den < 1e-3 {
		return 0, 0, false
	}
	yCenter = rEquator * math.Cos(Radians(lat)) / den
	radius = rEquator * math.Cos(Radians(alt)) / den
	return yCenter, radius, true
}

// Zenith returns the meridian offset of the projected zenith.
func Zenith(lat, rEquator float64) float64 {
	return rEquator * math.Tan(Radians(90-lat)/2)
}

// Nadir returns the meridian offset of the projected nadir (negative, below
// the pivot, usually far outside the plate).
func Nadir(lat, rEquator float64) float64 {
	return -rEquator * math.Tan(Radians(90+lat)/2)
}

// AzimuthCircle returns centre and radius of the circle of constant azimuth
// az (degrees from the meridian) for latitude lat. Every azimuth circle
// passes through the projected zenith and nadir; its centre lies on the
// horizontal line midway between them. Callers draw the mirrored circle at
// -az themselves. ok is false for az ~ 0 (the meridian is a straight line).
func AzimuthCircle(az, lat, rEquator float64) (xCenter, yCenter, radius float64, ok bool) {
	sinAz := math.Sin(Radians(az))
	if math.Abs(sinAz) < 1e-6 {
		return 0, 0, 0, false
	}
	yz := Zenith(lat, rEquator)
	yn := Nadir(lat, rEquator)
	half := (yz - yn) / 2
	yCenter = (yz + yn) / 2
	xCenter = half / math.Tan(Radians(az))
	radius = half / sinAz
	if radius < 0 {
		radius = -radius
	}
	return xCenter, yCenter, radius, true
}

// SunriseHourAngle returns the hour angle (degrees) at which a body of
// declination dec crosses the horizon at latitude lat. ok is false when the
// body is circumpolar or never rises.
func SunriseHourAngle(lat, dec float64) (h0 float64, ok bool) {
	c := -math.Tan(Radians(lat)) * math.Tan(Radians(dec))
	if c < -1 || c > 1 {
		return 0, false
	}
	return Degrees(math.Acos(c)), true
}

// PlatePoint maps equatorial coordinates (right ascension in hours,
// declination in degrees) onto the plate. The hour circle of 0h runs up the
// page; right ascension advances clockwise on a northern instrument and the
// map is mirrored east-west on a southern one.
func PlatePoint(raHours, dec, rEquator float64, southern bool) (x, y float64) {
	d := dec
	if southern {
		d = -dec
	}
	r := DeclinationRadius(d, rEquator)
	theta := Radians(raHours * 15)
	x = r * math.Sin(theta)
	if southern {
		x = -x
	}
	y = r * math.Cos(theta)
	return x, y
}

// EclipticToEquatorial converts an ecliptic longitude (latitude zero) into
// right ascension (hours) and declination (degrees).
func EclipticToEquatorial(lambda float64) (raHours, dec float64) {
	sinL := math.Sin(Radians(lambda))
	eps := Radians(Obliquity)
	dec = Degrees(math.Asin(math.Sin(eps) * sinL))
	ra := math.Atan2(math.Cos(eps)*sinL, math.Cos(Radians(lambda)))
	raHours = Degrees(ra) / 15
	if raHours < 0 {
		raHours += 24
	}
	return raHours, dec
}

// EclipticPoint maps an ecliptic longitude onto the plate.
func EclipticPoint(lambda, rEquator float64, southern bool) (x, y float64) {
	ra, dec := EclipticToEquatorial(lambda)
	return PlatePoint(ra, dec, rEquator, southern)
}

// EclipticCircle returns the centre and radius of the projected ecliptic,
// which is internally tangent to both tropic circles.
func EclipticCircle(rEquator float64, southern bool) (xCenter, yCenter, radius float64) {
	inner, outer := Tropics(rEquator)
	xCenter = -(outer - inner) / 2
	if southern {
		xCenter = -xCenter
	}
	return xCenter, 0, (outer + inner) / 2
}

// SolarLongitude returns the Sun's approximate ecliptic longitude in
// degrees for a day of the year (1 = January 1st, fractions allowed). The
// low-precision series is accurate to well under half a degree, far inside
// the engraving tolerance of a paper instrument.
func SolarLongitude(dayOfYear float64) float64 {
	d := dayOfYear - 1.5 // days since J2000.0 epoch within year 2000
	l := 280.460 + 0.9856474*d
	g := Radians(357.528 + 0.9856003*d)
	lambda := l + 1.915*math.Sin(g) + 0.020*math.Sin(2*g)
	return normalizeDeg(lambda)
}

// Circumcircle returns the circle through three points. ok is false when
// the points are (nearly) collinear.
func Circumcircle(x1, y1, x2, y2, x3, y3 float64) (cx, cy, r float64, ok bool) {
	d := 2 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(d) < 1e-9 {
		return 0, 0, 0, false
	}
	s1 := x1*x1 + y1*y1
	s2 := x2*x2 + y2*y2
	s3 := x3*x3 + y3*y3
	cx = (s1*(y2-y3) + s2*(y3-y1) + s3*(y1-y2)) / d
	cy = (s1*(x3-x2) + s2*(x1-x3) + s3*(x2-x1)) / d
	r = math.Hypot(x1-cx, y1-cy)
	return cx, cy, r, true
}

func normalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
