package patch

// Cost returns the price of covering totalFree repair cells with m double
// patches and totalFree-2m simple patches.
func Cost(totalFree, m int, p Prices) int64 {
	return int64(m)*p.Double + int64(totalFree-2*m)*p.Simple
}
