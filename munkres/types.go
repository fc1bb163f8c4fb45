package munkres

// Options configures a single Solve invocation.
//
// Fields:
//   - AllowNegatives — if true (the default), negative entries are tolerated
//     and resolved by uniformly shifting all entries so the minimum becomes
//     zero. The shift is internal only: the reported cost always uses the
//     caller's original values. If false, any negative entry fails the call
//     with ErrNegativeCost.
//   - ReturnPairs — if true, Result.Pairs carries the row→column assignment;
//     by default only the total cost is returned.
type Options struct {
	AllowNegatives bool
	ReturnPairs    bool
}

// DefaultOptions returns the documented defaults:
// AllowNegatives=true, ReturnPairs=false.
func DefaultOptions() Options {
	return Options{AllowNegatives: true}
}

// Pair is one row→column assignment in the optimal matching.
type Pair struct {
	Row, Col int
}

// Result holds the outcome of a Solve call.
type Result struct {
	// Cost is the minimum achievable total, summed over the caller's
	// original (unshifted, unpadded) entries.
	Cost int64

	// Pairs lists the selected (row, col) assignments in row order.
	// Nil unless Options.ReturnPairs was set. For a non-square input only
	// original rows and columns appear; dummy padding is never reported.
	Pairs []Pair
}
