package model

import (
	"time"

	"github.com/google/uuid"
)

type CustomLink struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// PortfolioPreferences is the user-chosen style preference object for the
// generated portfolio page.
type PortfolioPreferences struct {
	ColorTheme     string       `json:"color_theme"`
	Mode           string       `json:"mode"` // light | dark
	Corners        string       `json:"corners"`
	LayoutStyle    string       `json:"layout_style"`
	FontVibe       string       `json:"font_vibe"`
	ShadowDepth    string       `json:"shadow_depth,omitempty"`
	Density        string       `json:"density,omitempty"`
	AnimationLevel string       `json:"animation_level"`
	NavStyle       string       `json:"nav_style"`
	AvatarStyle    string       `json:"avatar_style,omitempty"`
	SectionOrder   []string     `json:"section_order"`
	CustomLinks    []CustomLink `json:"custom_links"`
	ContactEmail   string       `json:"contact_email,omitempty"`
	ContactPhone   string       `json:"contact_phone,omitempty"`
}

type PortfolioRequest struct {
	AnalysisResult AnalysisResult       `json:"analysis_result"`
	Preferences    PortfolioPreferences `json:"preferences"`
}

const (
	TaskStatusProcessing = "processing"
	TaskStatusCompleted  = "completed"
	TaskStatusFailed     = "failed"
)

// PortfolioTask is the background task handle for one portfolio generation.
// Done is closed when the generation finishes, whichever way it ends; the
// HTTP layer polls the record instead of awaiting the call.
type PortfolioTask struct {
	ID          uuid.UUID `json:"id"`
	Status      string    `json:"status"`
	HTMLContent string    `json:"html_content,omitempty"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Done chan struct{} `json:"-"`
}
