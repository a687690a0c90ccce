package types

// SectionSummary describes one top-level section of a document without rendering it
type SectionSummary struct {
	Name    string `json:"name"`
	Kind    string `json:"kind,omitempty"` // empty when the name is not a known section
	Type    string `json:"type,omitempty"` // the section's declared type tag
	Entries int    `json:"entries"`
	Known   bool   `json:"known"`
}
