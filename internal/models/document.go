// Package models defines core data structures for documents, sections, and analysis results.
package models

import "time"

// Document represents an uploaded resume file before extraction.
type Document struct {
	ID        string    `json:"id" db:"id"`
	Filename  string    `json:"filename" db:"filename"`
	MediaType string    `json:"media_type" db:"media_type"`
	SizeBytes int64     `json:"size_bytes" db:"size_bytes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ExtractedText is the raw text pulled out of a document, with
// per-line metadata preserved for downstream structural parsing.
type ExtractedText struct {
	Text      string   `json:"text"`
	Lines     []Line   `json:"lines,omitempty"`
	PageCount int      `json:"page_count,omitempty"`
	Source    string   `json:"source"` // "pdf", "docx", "txt", "ocr"
	Degraded  bool     `json:"degraded"`
	Warnings  []string `json:"warnings,omitempty"`
}

// Line is a single extracted line with its position in the document.
type Line struct {
	Text      string `json:"text"`
	Page      int    `json:"page"`
	Paragraph int    `json:"paragraph"`
}

// Section is a contiguous region of the resume under one recognized header.
// Header is the canonical section name; RawHeader preserves the text as written.
type Section struct {
	Header     string  `json:"header"`
	RawHeader  string  `json:"raw_header"`
	Content    string  `json:"content"`
	StartLine  int     `json:"start_line"`
	EndLine    int     `json:"end_line"`
	Confidence float64 `json:"confidence"`
}

// ContactEntry is a piece of contact information found in the resume.
type ContactEntry struct {
	Kind     string `json:"kind"` // "email", "phone", "url"
	Value    string `json:"value"`
	Platform string `json:"platform,omitempty"` // for urls: "github", "linkedin", ...
}

// ParsedResume is the structured view of a resume after section detection.
type ParsedResume struct {
	Sections []Section      `json:"sections"`
	Contacts []ContactEntry `json:"contacts"`
	FullText string         `json:"full_text"`
}

// SectionByHeader returns the first section with the given canonical
// header, or nil when absent.
func (p *ParsedResume) SectionByHeader(header string) *Section {
	for i := range p.Sections {
		if p.Sections[i].Header == header {
			return &p.Sections[i]
		}
	}
	return nil
}
