package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"

	"github.com/careercompassai/backend/internal/config"
	"github.com/careercompassai/backend/internal/model"
	"github.com/careercompassai/backend/internal/service"
	"github.com/careercompassai/backend/internal/util"
	"github.com/google/uuid"
	"google.golang.org/genai"
)

var questionRequiredFields = []string{"question_id", "question_text", "expected_keywords", "hints"}

var evaluationRequiredFields = []string{
	"overall_score", "sub_scores", "delivery", "what_went_well",
	"what_to_improve", "better_answer", "action_items",
}

// InterviewUsecase drives the mock-interview turn functions. Every operation
// here degrades to a usable fallback instead of erroring: an interview in
// progress must never be interrupted by a provider hiccup.
type InterviewUsecase struct {
	gemini service.GeminiServiceInterface
	cfg    *config.PipelineConfig
	model  string
}

func NewInterviewUsecase(gemini service.GeminiServiceInterface, pipeCfg *config.PipelineConfig, modelName string) *InterviewUsecase {
	return &InterviewUsecase{gemini: gemini, cfg: pipeCfg, model: modelName}
}

// GenerateTopics returns practice topics for a role, or an empty list when
// the call fails; the client falls back to its built-in topic set.
func (uc *InterviewUsecase) GenerateTopics(ctx context.Context, role string) []string {
	prompt := fmt.Sprintf(interviewTopicsPrompt, role)
	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   interviewTopicsSchema,
	}

	resp, err := uc.gemini.GenerateWithRetry(ctx, uc.model, genai.Text(prompt), genConfig, uc.cfg.MaxRetries)
	if err != nil {
		log.Printf("Topic generation failed for role %q: %v", role, err)
		return []string{}
	}

	var payload struct {
		Topics []string `json:"topics"`
	}
	text := util.StripCodeFences(resp.Text())
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		log.Printf("Topic response parse failed: %v", err)
		return []string{}
	}
	if payload.Topics == nil {
		return []string{}
	}
	return payload.Topics
}

// GenerateQuestion produces one question for a role+topic pair. On any
// failure it returns a generic behavioral question so the session continues.
func (uc *InterviewUsecase) GenerateQuestion(ctx context.Context, role, topic string) *model.InterviewQuestion {
	prompt := fmt.Sprintf(interviewQuestionPrompt, role, topic)
	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   interviewQuestionSchema,
	}

	resp, err := uc.gemini.GenerateWithRetry(ctx, uc.model, genai.Text(prompt), genConfig, uc.cfg.MaxRetries)
	if err != nil {
		log.Printf("Question generation failed for %q/%q: %v", role, topic, err)
		return fallbackQuestion()
	}

	text := util.StripCodeFences(resp.Text())
	if err := validateRequired(text, questionRequiredFields); err != nil {
		log.Printf("Question response rejected: %v", err)
		return fallbackQuestion()
	}

	var question model.InterviewQuestion
	if err := json.Unmarshal([]byte(text), &question); err != nil {
		log.Printf("Question response parse failed: %v", err)
		return fallbackQuestion()
	}
	if question.QuestionID == "" {
		question.QuestionID = uuid.NewString()
	}
	return &question
}

// EvaluateAnswer scores a transcript against its question. Failures return a
// zeroed evaluation with an explanatory improvement note rather than an error.
func (uc *InterviewUsecase) EvaluateAnswer(ctx context.Context, questionText, transcript string) *model.InterviewEvaluation {
	prompt := fmt.Sprintf(interviewEvaluationPrompt, questionText, transcript)
	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   interviewEvaluationSchema,
	}

	resp, err := uc.gemini.GenerateWithRetry(ctx, uc.model, genai.Text(prompt), genConfig, uc.cfg.MaxRetries)
	if err != nil {
		log.Printf("Answer evaluation failed: %v", err)
		return fallbackEvaluation()
	}

	text := util.StripCodeFences(resp.Text())
	if err := validateRequired(text, evaluationRequiredFields); err != nil {
		log.Printf("Evaluation response rejected: %v", err)
		return fallbackEvaluation()
	}

	var evaluation model.InterviewEvaluation
	if err := json.Unmarshal([]byte(text), &evaluation); err != nil {
		log.Printf("Evaluation response parse failed: %v", err)
		return fallbackEvaluation()
	}
	return &evaluation
}

// SynthesizeSpeech returns base64-encoded audio for text, or "" when the
// provider yields nothing; the client then uses on-device synthesis.
func (uc *InterviewUsecase) SynthesizeSpeech(ctx context.Context, text string) string {
	audio, err := uc.gemini.GenerateSpeech(ctx, text)
	if err != nil {
		log.Printf("Speech synthesis failed: %v", err)
		return ""
	}
	if len(audio) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(audio)
}

// TranscribeAudio converts recorded answer audio into text. The fallback
// string is shown to the user in place of the transcript.
func (uc *InterviewUsecase) TranscribeAudio(ctx context.Context, audio []byte, mimeType string) string {
	text, err := uc.gemini.Transcribe(ctx, audio, mimeType)
	if err != nil {
		log.Printf("Transcription failed: %v", err)
		return "Error transcribing audio."
	}
	return text
}

func fallbackQuestion() *model.InterviewQuestion {
	return &model.InterviewQuestion{
		QuestionID:       uuid.NewString(),
		QuestionText:     "Describe a challenging project you worked on.",
		ExpectedKeywords: []string{"project", "challenges", "solutions"},
		Hints:            []string{"Focus on your contribution", "Use STAR method"},
	}
}

func fallbackEvaluation() *model.InterviewEvaluation {
	return &model.InterviewEvaluation{
		OverallScore:  0,
		WhatWentWell:  []string{},
		WhatToImprove: []string{"Error processing evaluation."},
		BetterAnswer:  "N/A",
		Issues:        []model.IssueCallout{},
		ActionItems:   []model.ActionItem{},
	}
}
