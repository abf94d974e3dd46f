package scoring

import (
	"context"
	"strings"
	"testing"

	"github.com/hyperjump/hirescope/internal/models"
)

func TestDetectRole(t *testing.T) {
	tests := []struct {
		jd   string
		want string
	}{
		{"We need a backend engineer with Python", models.RoleTech},
		{"Hiring an Engineering Manager to grow the org", models.RoleManager},
		{"UX designer for our product", models.RoleCreative},
		{"Office administrator wanted", models.RoleGeneral},
		{"", models.RoleGeneral},
	}
	for _, tt := range tests {
		if got := DetectRole(tt.jd); got != tt.want {
			t.Errorf("DetectRole(%q) = %q, want %q", tt.jd, got, tt.want)
		}
	}
}

func TestDetectRole_techWinsOverManager(t *testing.T) {
	// Vocabulary order matters: tech words are checked first.
	if got := DetectRole("Engineering manager who was once a developer"); got != models.RoleTech {
		t.Errorf("got %q", got)
	}
}

func TestRoleWeights_sumToOne(t *testing.T) {
	for role, w := range roleWeights {
		sum := w.Structural + w.Semantic + w.Keyword + w.Readability + w.Tone
		if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("weights for %s sum to %f", role, sum)
		}
	}
}

func TestStructuralScore(t *testing.T) {
	tests := []struct {
		name    string
		parsed  *models.ParsedResume
		wantMin float64
		wantMax float64
	}{
		{
			"complete resume",
			&models.ParsedResume{
				FullText: "jane@example.com\nWork experience at Acme\nEducation: BS",
			},
			1.0, 1.0,
		},
		{
			"missing education",
			&models.ParsedResume{
				FullText: "jane@example.com\nYears of experience building systems",
			},
			0.66, 0.67,
		},
		{
			"empty",
			&models.ParsedResume{FullText: ""},
			0.0, 0.0,
		},
		{
			"sections detected without text markers",
			&models.ParsedResume{
				FullText: "worked and studied",
				Sections: []models.Section{
					{Header: "experience"},
					{Header: "education"},
				},
				Contacts: []models.ContactEntry{{Kind: "email", Value: "a@b.co"}},
			},
			1.0, 1.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StructuralScore(tt.parsed)
			if got < tt.wantMin || got > tt.wantMax {
				t.Errorf("StructuralScore = %f, want [%f, %f]", got, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestReadabilityScore_bounds(t *testing.T) {
	texts := []string{
		"",
		"Short. Simple. Clear.",
		"I led the team. We built the tool. It works well.",
		strings.Repeat("extraordinarily sophisticated multidimensional organizational ", 30) + ".",
	}
	for _, text := range texts {
		got := ReadabilityScore(text)
		if got < 0 || got > 1 {
			t.Errorf("ReadabilityScore(%.20q) = %f out of bounds", text, got)
		}
	}
}

func TestReadabilityScore_simplerTextScoresHigher(t *testing.T) {
	simple := "I led a team. We built a tool. The tool works."
	complex := "Responsibilities encompassed multidisciplinary organizational transformation initiatives leveraging cross-functional collaborative methodologies throughout heterogeneous enterprise environments."
	if ReadabilityScore(simple) <= ReadabilityScore(complex) {
		t.Errorf("simple=%f complex=%f", ReadabilityScore(simple), ReadabilityScore(complex))
	}
}

func TestToneScore(t *testing.T) {
	strong := "Led the migration. Built the pipeline. Optimized queries. Deployed daily."
	weak := "Was there for a while. Things happened. It was fine."
	if got := ToneScore(strong); got <= ToneScore(weak) {
		t.Errorf("strong=%f weak=%f", got, ToneScore(weak))
	}
	if got := ToneScore(strong); got < 0 || got > 1 {
		t.Errorf("out of bounds: %f", got)
	}
	if got := ToneScore(""); got != 0 {
		t.Errorf("empty text tone = %f", got)
	}
}

func TestSemanticScore(t *testing.T) {
	emb := newSeededEmbedder(8)
	jd := "looking for a go developer"
	v := []float32{1, 0, 0, 0, 0, 0, 0, 0}
	emb.seed(jd, v)
	emb.seed("I write Go services", v)

	got, err := SemanticScore(context.Background(), emb, "I write Go services. Unrelated hobby line.", jd)
	if err != nil {
		t.Fatal(err)
	}
	if got <= 0 || got > 1 {
		t.Errorf("SemanticScore = %f", got)
	}

	zero, err := SemanticScore(context.Background(), emb, "resume text", "")
	if err != nil || zero != 0 {
		t.Errorf("empty JD: got %f, %v", zero, err)
	}
}
