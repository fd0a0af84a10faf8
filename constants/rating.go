package constants

// RatingFilter selects ratings by derived polarity.
type RatingFilter string

const (
	RatingFilterPositive RatingFilter = "POSITIVE"
	RatingFilterNegative RatingFilter = "NEGATIVE"
	RatingFilterBoth     RatingFilter = "BOTH"
)

// Score bounds and the polarity threshold. A score of PositiveThreshold or
// above counts as positive; everything below is negative.
const (
	MinScore          = 1
	MaxScore          = 5
	PositiveThreshold = 3
)

// IsPositiveScore reports the derived polarity of a score.
func IsPositiveScore(score int) bool {
	return score >= PositiveThreshold
}
