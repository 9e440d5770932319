package model

import "testing"

func TestResumeHighlightsRecount(t *testing.T) {
	highlights := ResumeHighlights{
		Segments: []ResumeHighlightSegment{
			{ID: "s1", Rating: RatingGreen},
			{ID: "s2", Rating: RatingGreen},
			{ID: "s3", Rating: RatingYellow},
			{ID: "s4", Rating: RatingRed},
		},
		// Deliberately wrong counts, as a model often returns.
		SummaryCounts: HighlightSummaryCounts{Green: 9, Yellow: 9, Red: 9},
	}

	highlights.Recount()

	want := HighlightSummaryCounts{Green: 2, Yellow: 1, Red: 1}
	if highlights.SummaryCounts != want {
		t.Errorf("SummaryCounts = %+v, want %+v", highlights.SummaryCounts, want)
	}
}

func TestResumeHighlightsRecountEmpty(t *testing.T) {
	highlights := ResumeHighlights{SummaryCounts: HighlightSummaryCounts{Green: 3}}
	highlights.Recount()
	if highlights.SummaryCounts != (HighlightSummaryCounts{}) {
		t.Errorf("SummaryCounts = %+v, want zeroes", highlights.SummaryCounts)
	}
}
