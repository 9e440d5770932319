package model

const (
	RatingGreen  = "green"
	RatingYellow = "yellow"
	RatingRed    = "red"
)

type ResumeHighlightSegment struct {
	ID            string `json:"id"`
	Section       string `json:"section"`
	OriginalText  string `json:"original_text"`
	Rating        string `json:"rating"` // green | yellow | red
	Label         string `json:"label"`
	Comment       string `json:"comment"`
	SuggestedText string `json:"suggested_text,omitempty"`
}

type HighlightSummaryCounts struct {
	Green  int `json:"green"`
	Yellow int `json:"yellow"`
	Red    int `json:"red"`
}

// ResumeHighlights is the segmented, traffic-light-rated resume critique.
// SummaryCounts must equal the tally of segments by rating; Recount enforces
// that after parsing a model response.
type ResumeHighlights struct {
	OverallFeedback string                   `json:"overall_feedback"`
	Segments        []ResumeHighlightSegment `json:"segments"`
	SummaryCounts   HighlightSummaryCounts   `json:"summary_counts"`
}

// Recount rebuilds SummaryCounts from the segment tally.
func (r *ResumeHighlights) Recount() {
	counts := HighlightSummaryCounts{}
	for _, seg := range r.Segments {
		switch seg.Rating {
		case RatingGreen:
			counts.Green++
		case RatingYellow:
			counts.Yellow++
		case RatingRed:
			counts.Red++
		}
	}
	r.SummaryCounts = counts
}
