package model

// Domain records for the profile analysis result. Field names mirror the
// JSON shapes the model is asked to emit; every struct here is a plain value
// produced once per analysis session.

type SkillDistribution struct {
	Category     string  `json:"category"`
	SharePercent float64 `json:"share_percent"`
}

type GapSkill struct {
	Skill         string  `json:"skill"`
	CurrentLevel  float64 `json:"current_level"`
	RequiredLevel float64 `json:"required_level"`
	Priority      string  `json:"priority"` // high | medium | low
}

type CompetencySkill struct {
	Name            string `json:"name"`
	Level           string `json:"level"` // Beginner | Intermediate | Advanced | Expert
	EvidenceSource  string `json:"evidence_source"`
	EvidenceComment string `json:"evidence_comment"`
}

type CompetencyArea struct {
	Area   string            `json:"area"`
	Skills []CompetencySkill `json:"skills"`
}

type SkillFrequencyItem struct {
	SkillName string `json:"skill_name"`
	Count     int    `json:"count"`
}

type JDBreakdown struct {
	RoleTitle        string               `json:"role_title"`
	MustHaveSkills   []string             `json:"must_have_skills"`
	NiceToHaveSkills []string             `json:"nice_to_have_skills"`
	Responsibilities []string             `json:"responsibilities"`
	SkillFrequency   []SkillFrequencyItem `json:"skill_frequency"`
	EstimatedLevel   string               `json:"estimated_level"`
	CompanyArchetype string               `json:"company_archetype"`
}

type CompanyFit struct {
	Startup     float64 `json:"startup"`
	MNC         float64 `json:"mnc"`
	SaaS        float64 `json:"saas"`
	Fintech     float64 `json:"fintech"`
	ResearchLab float64 `json:"research_lab"`
}

type MarketAnalysis struct {
	RoleDemand          string  `json:"role_demand"` // High | Medium | Low
	CandidatePercentile float64 `json:"candidate_percentile"`
}

type EffortCategory struct {
	Category string  `json:"category"`
	Hours    float64 `json:"hours"`
}

type RoadmapEffort struct {
	Phase1 []EffortCategory `json:"phase_1"`
	Phase2 []EffortCategory `json:"phase_2"`
	Phase3 []EffortCategory `json:"phase_3"`
}

type RoadmapDetails struct {
	Phase1Goals []string `json:"phase_1_goals"`
	Phase2Goals []string `json:"phase_2_goals"`
	Phase3Goals []string `json:"phase_3_goals"`
}

type RoadmapTimelineItem struct {
	TaskName  string `json:"task_name"`
	StartWeek int    `json:"start_week"`
	EndWeek   int    `json:"end_week"`
	Category  string `json:"category"`
}

type EmployabilityProfile struct {
	CurrentVisibilityScore float64 `json:"current_visibility_score"`
	Phase1ProjectedScore   float64 `json:"phase_1_projected_score"`
	Phase2ProjectedScore   float64 `json:"phase_2_projected_score"`
	Phase3ProjectedScore   float64 `json:"phase_3_projected_score"`
}

type TextSummaries struct {
	CandidateName     string   `json:"candidate_name,omitempty"`
	CandidateHeadline string   `json:"candidate_headline,omitempty"`
	ProfileSummary    string   `json:"profile_summary"`
	Strengths         []string `json:"strengths"`
	Weaknesses        []string `json:"weaknesses"`
	SuggestedRoles    []string `json:"suggested_roles"`
	RoadmapSummary    string   `json:"roadmap_summary"`
}

// GithubProject is the normalized per-repository analysis record produced by
// the per-artifact analyzer and injected into the final result.
type GithubProject struct {
	Name                   string   `json:"name"`
	Summary                string   `json:"summary"`
	TechStack              []string `json:"tech_stack"`
	ComplexityRating       float64  `json:"complexity_rating"`
	ResumeBullets          []string `json:"resume_bullets"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
}

// ProjectDeepAnalysis is the raw schema-constrained shape the model returns
// for a single repository, before mapping into GithubProject.
type ProjectDeepAnalysis struct {
	ProjectName              string   `json:"project_name"`
	ShortDescription         string   `json:"short_description"`
	ProjectType              string   `json:"project_type"`
	TechStack                []string `json:"tech_stack"`
	ComplexityRating         float64  `json:"complexity_rating"`
	RecommendedResumeBullets []string `json:"recommended_resume_bullets"`
	ImprovementSuggestions   []string `json:"improvement_suggestions"`
}

type ApplicationAssets struct {
	ResumeBulletsOptimized string `json:"resume_bullets_optimized"`
	CoverLetter            string `json:"cover_letter"`
	LinkedinSummary        string `json:"linkedin_summary"`
	OutreachMessage        string `json:"outreach_message"`
}

type RadarCategory struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

type MatchBreakdown struct {
	Role            string  `json:"role"`
	MatchPercentage float64 `json:"match_percentage"`
}

type OverallScores struct {
	OverallMatch   float64          `json:"overall_match"`
	Categories     []RadarCategory  `json:"categories"`
	MatchBreakdown []MatchBreakdown `json:"match_breakdown"`
}

// AnalysisResult is the root aggregate produced by the capstone call, with
// github_projects and resume_highlights overlaid from the side channels.
type AnalysisResult struct {
	OverallScores        OverallScores         `json:"overall_scores"`
	MarketAnalysis       MarketAnalysis        `json:"market_analysis"`
	SkillDistribution    []SkillDistribution   `json:"skill_distribution"`
	GapSkills            []GapSkill            `json:"gap_skills"`
	CompetencyMatrix     []CompetencyArea      `json:"competency_matrix"`
	JDBreakdown          JDBreakdown           `json:"jd_breakdown"`
	CompanyFit           CompanyFit            `json:"company_fit"`
	RoadmapEffort        RoadmapEffort         `json:"roadmap_effort"`
	RoadmapDetails       RoadmapDetails        `json:"roadmap_details"`
	RoadmapTimeline      []RoadmapTimelineItem `json:"roadmap_timeline"`
	EmployabilityProfile EmployabilityProfile  `json:"employability_profile"`
	TextSummaries        TextSummaries         `json:"text_summaries"`
	GithubProjects       []GithubProject       `json:"github_projects"`
	Assets               ApplicationAssets     `json:"assets"`
	PortfolioTemplate    string                `json:"portfolio_template"`
	ResumeHighlights     *ResumeHighlights     `json:"resume_highlights,omitempty"`
	InterviewTopics      []string              `json:"interview_topics,omitempty"`
}
