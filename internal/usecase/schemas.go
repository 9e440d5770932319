package usecase

import "google.golang.org/genai"

// Response schemas handed to the model alongside each structured call. The
// provider honors these best-effort, so every response is still validated
// against the Required lists after parsing.

func stringArraySchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}
}

var projectDeepAnalysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"project_name":               {Type: genai.TypeString},
		"short_description":          {Type: genai.TypeString},
		"project_type":               {Type: genai.TypeString},
		"tech_stack":                 stringArraySchema(),
		"complexity_rating":          {Type: genai.TypeNumber, Description: "1-5"},
		"recommended_resume_bullets": stringArraySchema(),
		"improvement_suggestions":    stringArraySchema(),
	},
	Required: []string{
		"project_name", "short_description", "project_type", "tech_stack",
		"complexity_rating", "recommended_resume_bullets", "improvement_suggestions",
	},
}

var resumeHighlightsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"overall_feedback": {Type: genai.TypeString},
		"segments": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id":             {Type: genai.TypeString},
					"section":        {Type: genai.TypeString},
					"original_text":  {Type: genai.TypeString},
					"rating":         {Type: genai.TypeString, Enum: []string{"green", "yellow", "red"}},
					"label":          {Type: genai.TypeString},
					"comment":        {Type: genai.TypeString},
					"suggested_text": {Type: genai.TypeString},
				},
				Required: []string{"id", "section", "original_text", "rating", "label", "comment"},
			},
		},
		"summary_counts": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"green":  {Type: genai.TypeInteger},
				"yellow": {Type: genai.TypeInteger},
				"red":    {Type: genai.TypeInteger},
			},
			Required: []string{"green", "yellow", "red"},
		},
	},
	Required: []string{"overall_feedback", "segments", "summary_counts"},
}

var analysisResultSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"overall_scores": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"overall_match": {Type: genai.TypeNumber},
				"categories": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"category": {Type: genai.TypeString},
							"score":    {Type: genai.TypeNumber},
						},
						Required: []string{"category", "score"},
					},
				},
				"match_breakdown": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"role":             {Type: genai.TypeString},
							"match_percentage": {Type: genai.TypeNumber},
						},
						Required: []string{"role", "match_percentage"},
					},
				},
			},
			Required: []string{"overall_match", "categories", "match_breakdown"},
		},
		"market_analysis": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"role_demand":          {Type: genai.TypeString, Enum: []string{"High", "Medium", "Low"}},
				"candidate_percentile": {Type: genai.TypeNumber, Description: "Candidate's standing (0-100) relative to other applicants in the current market."},
			},
			Required: []string{"role_demand", "candidate_percentile"},
		},
		"skill_distribution": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category":      {Type: genai.TypeString},
					"share_percent": {Type: genai.TypeNumber},
				},
				Required: []string{"category", "share_percent"},
			},
		},
		"gap_skills": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"skill":          {Type: genai.TypeString},
					"current_level":  {Type: genai.TypeNumber},
					"required_level": {Type: genai.TypeNumber},
					"priority":       {Type: genai.TypeString, Enum: []string{"high", "medium", "low"}},
				},
				Required: []string{"skill", "current_level", "required_level", "priority"},
			},
		},
		"competency_matrix": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"area": {Type: genai.TypeString},
					"skills": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"name":             {Type: genai.TypeString},
								"level":            {Type: genai.TypeString, Enum: []string{"Beginner", "Intermediate", "Advanced", "Expert"}},
								"evidence_source":  {Type: genai.TypeString, Enum: []string{"resume", "github", "resume+github"}},
								"evidence_comment": {Type: genai.TypeString},
							},
							Required: []string{"name", "level", "evidence_source", "evidence_comment"},
						},
					},
				},
				Required: []string{"area", "skills"},
			},
		},
		"jd_breakdown": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"role_title":          {Type: genai.TypeString},
				"must_have_skills":    stringArraySchema(),
				"nice_to_have_skills": stringArraySchema(),
				"responsibilities":    stringArraySchema(),
				"skill_frequency": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"skill_name": {Type: genai.TypeString},
							"count":      {Type: genai.TypeInteger},
						},
						Required: []string{"skill_name", "count"},
					},
				},
				"estimated_level":   {Type: genai.TypeString},
				"company_archetype": {Type: genai.TypeString},
			},
			Required: []string{
				"role_title", "must_have_skills", "nice_to_have_skills",
				"responsibilities", "skill_frequency", "estimated_level", "company_archetype",
			},
		},
		"company_fit": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"startup":      {Type: genai.TypeNumber},
				"mnc":          {Type: genai.TypeNumber},
				"saas":         {Type: genai.TypeNumber},
				"fintech":      {Type: genai.TypeNumber},
				"research_lab": {Type: genai.TypeNumber},
			},
			Required: []string{"startup", "mnc", "saas", "fintech", "research_lab"},
		},
		"roadmap_effort": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"phase_1": effortCategoriesSchema(),
				"phase_2": effortCategoriesSchema(),
				"phase_3": effortCategoriesSchema(),
			},
			Required: []string{"phase_1", "phase_2", "phase_3"},
		},
		"roadmap_details": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"phase_1_goals": stringArraySchema(),
				"phase_2_goals": stringArraySchema(),
				"phase_3_goals": stringArraySchema(),
			},
			Required: []string{"phase_1_goals", "phase_2_goals", "phase_3_goals"},
		},
		"roadmap_timeline": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"task_name":  {Type: genai.TypeString},
					"start_week": {Type: genai.TypeInteger},
					"end_week":   {Type: genai.TypeInteger},
					"category":   {Type: genai.TypeString},
				},
				Required: []string{"task_name", "start_week", "end_week", "category"},
			},
		},
		"employability_profile": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"current_visibility_score": {Type: genai.TypeNumber},
				"phase_1_projected_score":  {Type: genai.TypeNumber},
				"phase_2_projected_score":  {Type: genai.TypeNumber},
				"phase_3_projected_score":  {Type: genai.TypeNumber},
			},
			Required: []string{
				"current_visibility_score", "phase_1_projected_score",
				"phase_2_projected_score", "phase_3_projected_score",
			},
		},
		"text_summaries": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"candidate_name":     {Type: genai.TypeString},
				"candidate_headline": {Type: genai.TypeString},
				"profile_summary":    {Type: genai.TypeString},
				"strengths":          stringArraySchema(),
				"weaknesses":         stringArraySchema(),
				"suggested_roles":    stringArraySchema(),
				"roadmap_summary":    {Type: genai.TypeString},
			},
			Required: []string{"profile_summary", "strengths", "weaknesses", "suggested_roles", "roadmap_summary"},
		},
		"github_projects": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":                    {Type: genai.TypeString},
					"summary":                 {Type: genai.TypeString},
					"tech_stack":              stringArraySchema(),
					"complexity_rating":       {Type: genai.TypeNumber},
					"resume_bullets":          stringArraySchema(),
					"improvement_suggestions": stringArraySchema(),
				},
				Required: []string{"name", "summary", "tech_stack", "complexity_rating", "resume_bullets", "improvement_suggestions"},
			},
		},
		"assets": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"resume_bullets_optimized": {Type: genai.TypeString},
				"cover_letter":             {Type: genai.TypeString},
				"linkedin_summary":         {Type: genai.TypeString},
				"outreach_message":         {Type: genai.TypeString},
			},
			Required: []string{"resume_bullets_optimized", "cover_letter", "linkedin_summary", "outreach_message"},
		},
		"portfolio_template": {Type: genai.TypeString, Description: "Complete single-file HTML document."},
		"interview_topics":   stringArraySchema(),
	},
	Required: []string{
		"overall_scores", "market_analysis", "skill_distribution", "gap_skills",
		"competency_matrix", "jd_breakdown", "company_fit", "roadmap_effort",
		"roadmap_details", "roadmap_timeline", "employability_profile",
		"text_summaries", "github_projects", "assets", "portfolio_template",
	},
}

func effortCategoriesSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"category": {Type: genai.TypeString},
				"hours":    {Type: genai.TypeNumber},
			},
			Required: []string{"category", "hours"},
		},
	}
}

var interviewTopicsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"topics": stringArraySchema(),
	},
	Required: []string{"topics"},
}

var interviewQuestionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"question_id":       {Type: genai.TypeString},
		"question_text":     {Type: genai.TypeString},
		"expected_keywords": stringArraySchema(),
		"hints":             stringArraySchema(),
	},
	Required: []string{"question_id", "question_text", "expected_keywords", "hints"},
}

var interviewEvaluationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"overall_score": {Type: genai.TypeInteger, Description: "0-100"},
		"sub_scores": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"structure":   {Type: genai.TypeInteger},
				"correctness": {Type: genai.TypeInteger},
				"depth":       {Type: genai.TypeInteger},
				"clarity":     {Type: genai.TypeInteger},
				"evidence":    {Type: genai.TypeInteger},
				"conciseness": {Type: genai.TypeInteger},
			},
			Required: []string{"structure", "correctness", "depth", "clarity", "evidence", "conciseness"},
		},
		"delivery": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"fluency_score":       {Type: genai.TypeInteger},
				"filler_word_count":   {Type: genai.TypeInteger},
				"confidence_estimate": {Type: genai.TypeNumber, Description: "0.0 to 1.0"},
			},
			Required: []string{"fluency_score", "filler_word_count", "confidence_estimate"},
		},
		"issues": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"timestamp_sec": {Type: genai.TypeNumber},
					"severity":      {Type: genai.TypeString},
					"comment":       {Type: genai.TypeString},
				},
				Required: []string{"timestamp_sec", "severity", "comment"},
			},
		},
		"what_went_well":  stringArraySchema(),
		"what_to_improve": stringArraySchema(),
		"better_answer":   {Type: genai.TypeString},
		"action_items": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category":       {Type: genai.TypeString},
					"recommendation": {Type: genai.TypeString},
				},
				Required: []string{"category", "recommendation"},
			},
		},
	},
	Required: []string{
		"overall_score", "sub_scores", "delivery", "issues",
		"what_went_well", "what_to_improve", "better_answer", "action_items",
	},
}
