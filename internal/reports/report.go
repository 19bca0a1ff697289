// Package reports assembles a session and everything recorded against it
// into a hierarchical report, renders it as JSON or PDF, and keeps
// snapshots of generated reports.
package reports

import (
	"time"

	"github.com/google/uuid"
)

// Report is the read-only projection of a session and its prompts.
type Report struct {
	SessionID uuid.UUID      `json:"session_id"`
	ModelUsed *string        `json:"model_used"`
	Domain    *string        `json:"domain"`
	CreatedAt time.Time      `json:"created_at"`
	Prompts   []PromptReport `json:"prompts"`
}

// PromptReport groups a prompt with its insights, cross-examination turns,
// rewrites, and override.
type PromptReport struct {
	ID            uuid.UUID      `json:"id"`
	PromptText    string         `json:"prompt_text"`
	AIResponse    *string        `json:"ai_response"`
	BiasInsights  []InsightEntry `json:"bias_insights"`
	CrossExams    []ExamEntry    `json:"cross_exams"`
	Perspectives  []RewriteEntry `json:"perspectives"`
	HumanOverride *OverrideEntry `json:"human_override"`
}

type InsightEntry struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
	Summary  *string `json:"summary"`
}

type ExamEntry struct {
	UserQuestion string `json:"user_question"`
	AIResponse   string `json:"ai_response"`
}

type RewriteEntry struct {
	Perspective       string `json:"perspective"`
	AIRephrasedOutput string `json:"ai_rephrased_output"`
}

type OverrideEntry struct {
	HumanResponse string   `json:"human_response"`
	Justification *string  `json:"justification"`
	Tags          []string `json:"tags"`
}

// Snapshot is a stored copy of an assembled report. ArchiveKey names the
// rendered document in blob storage when archiving is enabled.
type Snapshot struct {
	SessionID   uuid.UUID `json:"session_id"`
	Report      Report    `json:"report"`
	ArchiveKey  *string   `json:"archive_key"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Document is a rendered report.
type Document struct {
	Data        []byte
	ContentType string
	Filename    string
}
