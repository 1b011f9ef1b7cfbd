package insight

var seedPrimes = [...]int{31, 37, 41}

// Seed folds stable fields into a non-negative integer. Each field is
// weighted by its own prime so that swapping two fields changes the seed.
func Seed(fields ...string) int {
	total := 0
	for i, field := range fields {
		prime := seedPrimes[i%len(seedPrimes)]
		for _, r := range field {
			total += int(r) * prime
		}
	}
	if total < 0 {
		total = -total
	}
	return total
}

// pick returns options[(seed+offset) % len] or "" for an empty list.
func pick(options []string, seed, offset int) string {
	if len(options) == 0 {
		return ""
	}
	return options[(seed+offset)%len(options)]
}

// pickDistinct returns up to n distinct options, walking the list from a
// seeded start so the selection is stable for a given seed.
func pickDistinct(options []string, seed, n int) []string {
	if n > len(options) {
		n = len(options)
	}
	out := make([]string, 0, n)
	if n == 0 {
		return out
	}
	start := seed % len(options)
	for i := 0; len(out) < n && i < len(options); i++ {
		out = append(out, options[(start+i)%len(options)])
	}
	return out
}
