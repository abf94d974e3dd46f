package template

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/hyperjump/hirescope/internal/models"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`

// Generate renders the industry template for req as a DOCX document.
// Placeholder contact details stand in when the request leaves them
// blank, matching what the sample content expects.
func Generate(req *models.TemplateRequest, w io.Writer) error {
	if err := req.Validate(); err != nil {
		return err
	}
	t, err := Get(req.Industry)
	if err != nil {
		return err
	}

	name := req.Name
	if name == "" {
		name = "YOUR NAME"
	}
	title := req.Title
	if title == "" {
		title = "Your Title"
	}

	var body strings.Builder
	writePara(&body, strings.ToUpper(name), true)
	writePara(&body, title, false)
	writePara(&body, "email@example.com | (123) 456-7890 | City, State", false)
	writePara(&body, "", false)

	for _, sectionName := range t.Order {
		content := t.Sample[sectionName]
		writePara(&body, strings.ToUpper(sectionName), true)
		writeSection(&body, sectionName, content)
		writePara(&body, "", false)
	}

	return writeDocx(w, body.String())
}

func writeSection(b *strings.Builder, name string, content SectionContent) {
	if content.Text != "" {
		writePara(b, content.Text, false)
	}
	for _, item := range content.Items {
		writePara(b, "- "+item, false)
	}
	for _, group := range content.SkillGroups {
		writePara(b, group.Label+": "+strings.Join(group.Skills, ", "), false)
	}
	for _, job := range content.Jobs {
		writePara(b, job.Company+" | "+job.Title, true)
		writePara(b, job.Location+" | "+job.Dates, false)
		for _, bullet := range job.Bullets {
			writePara(b, "- "+bullet, false)
		}
	}
}

// writePara appends one OOXML paragraph; bold toggles the run style.
func writePara(b *strings.Builder, text string, bold bool) {
	b.WriteString("<w:p><w:r>")
	if bold {
		b.WriteString("<w:rPr><w:b/></w:rPr>")
	}
	b.WriteString("<w:t xml:space=\"preserve\">")
	_ = xml.EscapeText(b, []byte(text))
	b.WriteString("</w:t></w:r></w:p>")
}

// writeDocx assembles the minimal OOXML package around the body.
func writeDocx(w io.Writer, body string) error {
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body +
		`</w:body></w:document>`

	zw := zip.NewWriter(w)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", document},
	}
	for _, part := range parts {
		fw, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := fw.Write([]byte(part.content)); err != nil {
			return fmt.Errorf("write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize docx: %w", err)
	}
	return nil
}
