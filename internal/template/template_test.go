package template

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/hyperjump/hirescope/internal/extract"
	"github.com/hyperjump/hirescope/internal/models"
)

func TestGenerateRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	req := &models.TemplateRequest{Industry: "tech", Name: "Jane Smith", Title: "Software Engineer"}
	if err := Generate(req, &buf); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// The generated file must survive our own extractor.
	extracted, err := extract.NewExtractor().Extract(context.Background(), "template.docx", buf.Bytes())
	if err != nil {
		t.Fatalf("extract generated docx: %v", err)
	}
	text := extracted.Text
	for _, want := range []string{
		"JANE SMITH",
		"TECHNICAL SKILLS",
		"EXPERIENCE",
		"EDUCATION",
		"Languages: Python",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("generated template missing %q", want)
		}
	}
}

func TestGenerateAllIndustries(t *testing.T) {
	for _, industry := range []string{"tech", "finance", "healthcare", "marketing"} {
		t.Run(industry, func(t *testing.T) {
			var buf bytes.Buffer
			err := Generate(&models.TemplateRequest{Industry: industry}, &buf)
			if err != nil {
				t.Fatalf("Generate(%s): %v", industry, err)
			}
			if buf.Len() == 0 {
				t.Error("empty document")
			}

			extracted, err := extract.NewExtractor().Extract(context.Background(), "t.docx", buf.Bytes())
			if err != nil {
				t.Fatalf("extract: %v", err)
			}
			tmpl, _ := Get(industry)
			for _, section := range tmpl.Order {
				if !strings.Contains(extracted.Text, strings.ToUpper(section)) {
					t.Errorf("missing section header %q", section)
				}
			}
		})
	}
}

func TestGenerateRejectsUnknownIndustry(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&models.TemplateRequest{Industry: "astrology"}, &buf); err == nil {
		t.Error("expected error for unknown industry")
	}
	if err := Generate(&models.TemplateRequest{}, &buf); err == nil {
		t.Error("expected error for missing industry")
	}
}

func TestTemplatesAreComplete(t *testing.T) {
	list := List()
	if len(list) != 4 {
		t.Fatalf("got %d templates, want 4", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].Industry < list[i-1].Industry {
			t.Error("templates not sorted by industry")
		}
	}
	for _, tmpl := range list {
		inOrder := map[string]bool{}
		for _, s := range tmpl.Order {
			inOrder[s] = true
		}
		for _, required := range tmpl.Required {
			if !inOrder[required] {
				t.Errorf("%s: required section %q not in order", tmpl.Industry, required)
			}
		}
		for _, s := range tmpl.Order {
			content := tmpl.Sample[s]
			if content.Text == "" && len(content.Items) == 0 && len(content.SkillGroups) == 0 && len(content.Jobs) == 0 {
				t.Errorf("%s: section %q has no sample content", tmpl.Industry, s)
			}
		}
	}
}
