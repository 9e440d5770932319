package dto

type TopicsRequest struct {
	Role string `json:"role"`
}

type QuestionRequest struct {
	Role  string `json:"role"`
	Topic string `json:"topic"`
}

type EvaluationRequest struct {
	QuestionText string `json:"question_text"`
	Transcript   string `json:"transcript"`
}

type SpeechRequest struct {
	Text string `json:"text"`
}
