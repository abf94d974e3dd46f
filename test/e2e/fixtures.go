// Package e2e provides end-to-end tests; this file builds minimal resume files.
package e2e

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
)

// ResumeSpec describes a synthetic candidate used to build fixture files.
type ResumeSpec struct {
	Name   string
	Email  string
	Phone  string
	Role   string
	Skills []string
}

// ResumeText renders a plain-text resume for the candidate with standard
// section headers, parseable by the full pipeline.
func ResumeText(spec ResumeSpec) string {
	return fmt.Sprintf(`%s
%s
%s

EXPERIENCE
%s at Example Corp
Built and operated production systems using %s.
Led a small team and reduced incident response time by 40 percent.

EDUCATION
B.Sc. Computer Science, State University

SKILLS
%s
`, spec.Name, spec.Email, spec.Phone, spec.Role,
		strings.Join(spec.Skills, " and "),
		strings.Join(spec.Skills, ", "))
}

// MinimalDocx wraps text in a bare OOXML word document, one paragraph
// per line, for exercising the DOCX extraction path.
func MinimalDocx(text string) []byte {
	var body strings.Builder
	for _, line := range strings.Split(text, "\n") {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		body.WriteString(escapeXML(line))
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, _ := w.Create("word/document.xml")
	_, _ = fw.Write([]byte(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body.String() + `</w:body></w:document>`))
	// The OOXML reader refuses archives without the document relationships part.
	rw, _ := w.Create("word/_rels/document.xml.rels")
	_, _ = rw.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`))
	_ = w.Close()
	return buf.Bytes()
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
