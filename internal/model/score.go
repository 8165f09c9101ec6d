package model

// Fixed scoring constants. The score only counts validator complaints, it is
// not calibrated against real compiler output.
const (
	ConfidenceBase              = 95
	ConfidencePenaltyPerWarning = 15
)

// Score converts a warning sequence into a 0-100 confidence value.
func Score(warnings []Warning) int {
	score := ConfidenceBase - ConfidencePenaltyPerWarning*len(warnings)
	if score < 0 {
		return 0
	}

	return score
}
