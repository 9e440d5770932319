package model

// InterviewQuestion is one generated question for a role+topic pair.
type InterviewQuestion struct {
	QuestionID       string   `json:"question_id"`
	QuestionText     string   `json:"question_text"`
	ExpectedKeywords []string `json:"expected_keywords"`
	Hints            []string `json:"hints"`
}

type EvaluationSubScores struct {
	Structure   int `json:"structure"`
	Correctness int `json:"correctness"`
	Depth       int `json:"depth"`
	Clarity     int `json:"clarity"`
	Evidence    int `json:"evidence"`
	Conciseness int `json:"conciseness"`
}

type DeliveryMetrics struct {
	FluencyScore       int     `json:"fluency_score"`
	FillerWordCount    int     `json:"filler_word_count"`
	ConfidenceEstimate float64 `json:"confidence_estimate"` // 0.0 to 1.0
}

type IssueCallout struct {
	TimestampSec float64 `json:"timestamp_sec"`
	Severity     string  `json:"severity"`
	Comment      string  `json:"comment"`
}

type ActionItem struct {
	Category       string `json:"category"`
	Recommendation string `json:"recommendation"`
}

// InterviewEvaluation is the structured multi-dimensional score for one
// answered question. Ephemeral; no state is carried across turns beyond what
// the caller threads through explicitly.
type InterviewEvaluation struct {
	OverallScore  int                 `json:"overall_score"`
	SubScores     EvaluationSubScores `json:"sub_scores"`
	Delivery      DeliveryMetrics     `json:"delivery"`
	Issues        []IssueCallout      `json:"issues"`
	WhatWentWell  []string            `json:"what_went_well"`
	WhatToImprove []string            `json:"what_to_improve"`
	BetterAnswer  string              `json:"better_answer"`
	ActionItems   []ActionItem        `json:"action_items"`
}
