// Package stars carries the bright-star catalogue plotted on the rete.
// Positions are J2000; the list covers every star brighter than roughly
// magnitude 2, which is about as much as a paper star map can carry before
// the labels collide.
package stars

// Star is one catalogue entry.
type Star struct {
	Name       string
	RAHours    float64
	DecDegrees float64
	Magnitude  float64
}

var catalogue = []Star{
	{"Sirius", 6.7525, -16.716, -1.46},
	{"Canopus", 6.3992, -52.696, -0.74},
	{"Rigil Kentaurus", 14.6599, -60.834, -0.27},
	{"Arcturus", 14.2610, 19.182, -0.05},
	{"Vega", 18.6156, 38.784, 0.03},
	{"Capella", 5.2782, 45.998, 0.08},
	{"Rigel", 5.2423, -8.202, 0.13},
	{"Procyon", 7.6550, 5.225, 0.34},
	{"Achernar", 1.6286, -57.237, 0.46},
	{"Betelgeuse", 5.9195, 7.407, 0.50},
	{"Hadar", 14.0637, -60.373, 0.61},
	{"Acrux", 12.4433, -63.099, 0.76},
	{"Altair", 19.8464, 8.868, 0.77},
	{"Aldebaran", 4.5987, 16.509, 0.86},
	{"Spica", 13.4199, -11.161, 0.97},
	{"Antares", 16.4901, -26.432, 1.06},
	{"Pollux", 7.7553, 28.026, 1.14},
	{"Fomalhaut", 22.9608, -29.622, 1.16},
	{"Deneb", 20.6905, 45.280, 1.25},
	{"Mimosa", 12.7953, -59.689, 1.25},
	{"Regulus", 10.1395, 11.967, 1.40},
	{"Adhara", 6.9771, -28.972, 1.50},
	{"Castor", 7.5767, 31.888, 1.58},
	{"Shaula", 17.5601, -37.104, 1.62},
	{"Bellatrix", 5.4188, 6.350, 1.64},
	{"Elnath", 5.4382, 28.608, 1.65},
	{"Miaplacidus", 9.2200, -69.717, 1.67},
	{"Alnilam", 5.6036, -1.202, 1.69},
	{"Alnair", 22.1372, -46.961, 1.74},
	{"Alioth", 12.9005, 55.960, 1.77},
	{"Alnitak", 5.6793, -1.943, 1.77},
	{"Dubhe", 11.0621, 61.751, 1.79},
	{"Mirfak", 3.4054, 49.861, 1.80},
	{"Wezen", 7.1399, -26.393, 1.84},
	{"Kaus Australis", 18.4029, -34.385, 1.85},
	{"Avior", 8.3752, -59.510, 1.86},
	{"Alkaid", 13.7923, 49.313, 1.86},
	{"Sargas", 17.6220, -42.998, 1.87},
	{"Menkalinan", 5.9921, 44.948, 1.90},
	{"Atria", 16.8111, -69.028, 1.91},
	{"Alhena", 6.6285, 16.399, 1.92},
	{"Peacock", 20.4275, -56.735, 1.94},
	{"Alphard", 9.4598, -8.659, 1.98},
	{"Polaris", 2.5303, 89.264, 1.98},
	{"Mirzam", 6.3783, -17.956, 1.98},
	{"Hamal", 2.1196, 23.462, 2.01},
}

// All returns the full catalogue, brightest first.
func All() []Star {
	out := make([]Star, len(catalogue))
	copy(out, catalogue)
	return out
}

// Brighter returns the stars with magnitude at or below limit, brightest
// first.
func Brighter(limit float64) []Star {
	var out []Star
	for _, s := range catalogue {
		if s.Magnitude <= limit {
			out = append(out, s)
		}
	}
	return out
}
