// Package periodic holds immutable element lookup tables: atomic
// number ↔ symbol and atomic number → standard weight. The maps are
// initialized once at process start and must never be mutated.
package periodic

import "strings"

// weights maps atomic number to standard atomic weight (u).
var weights = map[int]float64{
	1: 1.00797, 2: 4.00260, 3: 6.941, 4: 9.01218, 5: 10.81,
	6: 12.011, 7: 14.0067, 8: 15.9994, 9: 18.998403, 10: 20.179,
	11: 22.98977, 12: 24.305, 13: 26.98154, 14: 28.0855, 15: 30.97376,
	16: 32.06, 17: 35.453, 18: 39.948, 19: 39.0983, 20: 40.08,
	21: 44.9559, 22: 47.90, 23: 50.9415, 24: 51.996, 25: 54.9380,
	26: 55.847, 27: 58.9332, 28: 58.70, 29: 63.546, 30: 65.38,
	31: 69.72, 32: 72.59, 33: 74.9216, 34: 78.96, 35: 79.904,
	36: 83.80, 37: 85.4678, 38: 87.62, 39: 88.9059, 40: 91.22,
	41: 92.9064, 42: 95.94, 43: 98, 44: 101.07, 45: 102.9055,
	46: 106.4, 47: 107.868, 48: 112.41, 49: 114.82, 50: 118.69,
	51: 121.75, 52: 127.60, 53: 126.9045, 54: 131.30, 55: 132.9054,
	56: 137.33, 57: 138.9055, 58: 140.12, 59: 140.9077, 60: 144.24,
	61: 145, 62: 150.4, 63: 151.96, 64: 157.25, 65: 158.9254,
	66: 162.50, 67: 164.9304, 68: 167.26, 69: 168.9342, 70: 173.04,
	71: 174.967, 72: 178.49, 73: 180.9479, 74: 183.85, 75: 186.207,
	76: 190.2, 77: 192.22, 78: 195.09, 79: 196.9665, 80: 200.59,
	81: 204.37, 82: 207.2, 83: 208.9804, 84: 209, 85: 210,
	86: 222, 87: 223, 88: 226.0254, 89: 227.0278, 90: 232.0381,
	91: 231.0359, 92: 238.029, 93: 237.0482, 94: 242, 95: 243,
	96: 247, 97: 247, 98: 251, 99: 252, 100: 257,
	101: 258, 102: 250, 103: 260, 104: 261, 105: 262,
	106: 263, 107: 262, 108: 255, 109: 256, 110: 269,
	111: 272, 112: 277,
}

// symbols maps atomic number to element symbol.
var symbols = map[int]string{
	1: "H", 2: "He", 3: "Li", 4: "Be", 5: "B",
	6: "C", 7: "N", 8: "O", 9: "F", 10: "Ne",
	11: "Na", 12: "Mg", 13: "Al", 14: "Si", 15: "P",
	16: "S", 17: "Cl", 18: "Ar", 19: "K", 20: "Ca",
	21: "Sc", 22: "Ti", 23: "V", 24: "Cr", 25: "Mn",
	26: "Fe", 27: "Co", 28: "Ni", 29: "Cu", 30: "Zn",
	31: "Ga", 32: "Ge", 33: "As", 34: "Se", 35: "Br",
	36: "Kr", 37: "Rb", 38: "Sr", 39: "Y", 40: "Zr",
	41: "Nb", 42: "Mo", 43: "Tc", 44: "Ru", 45: "Rh",
	46: "Pd", 47: "Ag", 48: "Cd", 49: "In", 50: "Sn",
	51: "Sb", 52: "Te", 53: "I", 54: "Xe", 55: "Cs",
	56: "Ba", 57: "La", 58: "Ce", 59: "Pr", 60: "Nd",
	61: "Pm", 62: "Sm", 63: "Eu", 64: "Gd", 65: "Tb",
	66: "Dy", 67: "Ho", 68: "Er", 69: "Tm", 70: "Yb",
	71: "Lu", 72: "Hf", 73: "Ta", 74: "W", 75: "Re",
	76: "Os", 77: "Ir", 78: "Pt", 79: "Au", 80: "Hg",
	81: "Tl", 82: "Pb", 83: "Bi", 84: "Po", 85: "At",
	86: "Rn", 87: "Fr", 88: "Ra", 89: "Ac", 90: "Th",
	91: "Pa", 92: "U", 93: "Np", 94: "Pu", 95: "Am",
	96: "Cm", 97: "Bk", 98: "Cf", 99: "Es", 100: "Fm",
	101: "Md", 102: "No", 103: "Lr", 104: "Rf", 105: "Db",
	106: "Sg", 107: "Bh", 108: "Hs", 109: "Mt", 110: "Ds",
	111: "Rg", 112: "Cn", 114: "Uuq", 116: "Uuh",
}

// numbers is the inverse of symbols, keyed by lower-case symbol so
// lookups are case-insensitive.
var numbers = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for z, sym := range symbols {
		m[strings.ToLower(sym)] = z
	}
	return m
}()

// Symbol returns the element symbol for atomic number z.
func Symbol(z int) (string, bool) {
	s, ok := symbols[z]
	return s, ok
}

// Number returns the atomic number for an element symbol
// (case-insensitive).
func Number(symbol string) (int, bool) {
	z, ok := numbers[strings.ToLower(symbol)]
	return z, ok
}

// Weight returns the standard atomic weight for atomic number z.
func Weight(z int) (float64, bool) {
	w, ok := weights[z]
	return w, ok
}

// WeightOrUnit returns the standard atomic weight for z, or 1.0 when z
// is unknown. Used where labels are arbitrary integers rather than
// real elements (the inertia solver treats those atoms as unit mass).
func WeightOrUnit(z int) float64 {
	if w, ok := weights[z]; ok {
		return w
	}
	return 1.0
}
