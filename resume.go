package resume2pdf

import (
	"encoding/json"
	"fmt"
)

// ResumeDocument is a validated résumé following the JSON Resume schema.
// Every section is optional; absent sections are suppressed entirely in
// rendered output. Entry lists preserve insertion order and are never
// re-sorted.
//
// The document is treated as immutable for the duration of a render.
type ResumeDocument struct {
	Basics       Basics           `json:"basics"`
	Work         []WorkEntry      `json:"work,omitempty"`
	Education    []EducationEntry `json:"education,omitempty"`
	Skills       []SkillGroup     `json:"skills,omitempty"`
	Projects     []Project        `json:"projects,omitempty"`
	Certificates []Certificate    `json:"certificates,omitempty"`
	Languages    []Language       `json:"languages,omitempty"`
}

// Basics is the identity and contact block.
type Basics struct {
	Name     string    `json:"name"`
	Label    string    `json:"label,omitempty"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	URL      string    `json:"url,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Location *Location `json:"location,omitempty"`
	Profiles []Profile `json:"profiles,omitempty"`
}

// Location is a physical location within the identity block.
type Location struct {
	Address     string `json:"address,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	City        string `json:"city,omitempty"`
	Region      string `json:"region,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

// Profile is a social or professional network profile.
type Profile struct {
	Network  string `json:"network,omitempty"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url,omitempty"`
}

// WorkEntry is one position in the work history.
// Dates use date-only strings: YYYY-MM-DD, YYYY-MM, or YYYY.
// An empty EndDate means the position is ongoing.
type WorkEntry struct {
	Name       string   `json:"name,omitempty"`
	Position   string   `json:"position,omitempty"`
	Location   string   `json:"location,omitempty"`
	URL        string   `json:"url,omitempty"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// EducationEntry is one entry in the education history.
type EducationEntry struct {
	Institution string   `json:"institution,omitempty"`
	Area        string   `json:"area,omitempty"`
	StudyType   string   `json:"studyType,omitempty"`
	URL         string   `json:"url,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Score       string   `json:"score,omitempty"`
	Courses     []string `json:"courses,omitempty"`
}

// SkillGroup is a named group of related skills.
type SkillGroup struct {
	Name     string   `json:"name,omitempty"`
	Level    string   `json:"level,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// Project is a personal or professional project.
type Project struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Certificate is a professional certification.
type Certificate struct {
	Name   string `json:"name,omitempty"`
	Date   string `json:"date,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	URL    string `json:"url,omitempty"`
}

// Language is a spoken language and its fluency level.
type Language struct {
	Language string `json:"language,omitempty"`
	Fluency  string `json:"fluency,omitempty"`
}

// ParseResume decodes résumé JSON into a ResumeDocument.
// It assumes the bytes already passed schema validation; decoding errors
// here indicate malformed JSON, not schema violations.
func ParseResume(data []byte) (*ResumeDocument, error) {
	var doc ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing resume JSON: %w", err)
	}
	return &doc, nil
}

// Title derives the document title metadata: "<name> - Resume".
func (r *ResumeDocument) Title() string {
	return r.Basics.Name + " - Resume"
}
