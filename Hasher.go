package Go_DHTable

// Hasher is the base of a polynomial string hash. Two hashers with distinct prime bases give the
// two independent hash functions that drive double hashing.
type Hasher uint

const (
	H1 Hasher = 151 //first probe position.
	H2 Hasher = 163 //probe step.
)

// HashBytes computes sum(base^(len(b)-1-i) * b[i]) mod m in Horner form. Every step is reduced mod m, so
// intermediate values stay below m*base+256. m must be > 0.
func (u Hasher) HashBytes(b []byte, m uint) uint {
	h := uint(0)
	for _, c := range b {
		h = (h*uint(u) + uint(c)) % m
	}
	return h
}

// HashString is HashBytes for strings.
func (u Hasher) HashString(s string, m uint) uint {
	h := uint(0)
	for i := 0; i < len(s); i++ {
		h = (h*uint(u) + uint(s[i])) % m
	}
	return h
}

// Step turns a second hash h2 in [0,m) into a probe step in [1,m). For h2<m-1 this is h2+1; the only
// other value, m-1, would make h2+1 a multiple of m, so it's folded onto 1 instead.
// With m prime, any step in [1,m) is coprime to m and the probe sequence visits all m slots.
func Step(h2, m uint) uint {
	return h2%(m-1) + 1
}

// Probe is the attempt-th slot of a probe sequence starting at h1 with the given step, mod m.
func Probe(h1, step, m, attempt uint) uint {
	return (h1 + attempt%m*step) % m
}
