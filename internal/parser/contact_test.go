package parser

import (
	"testing"
)

func TestExtractContacts_email(t *testing.T) {
	got := ExtractContacts("Reach me at jane.doe+work@example.co.uk or jane.doe+work@example.co.uk")
	emails := 0
	for _, c := range got {
		if c.Kind == "email" {
			emails++
			if c.Value != "jane.doe+work@example.co.uk" {
				t.Errorf("email = %q", c.Value)
			}
		}
	}
	if emails != 1 {
		t.Errorf("duplicate email should collapse: got %d", emails)
	}
}

func TestExtractContacts_urlDedup(t *testing.T) {
	got := ExtractContacts("https://github.com/jane and github.com/jane/ and www.github.com/jane")
	urls := 0
	for _, c := range got {
		if c.Kind == "url" {
			urls++
		}
	}
	if urls != 1 {
		t.Errorf("equivalent URLs should collapse to one: got %d (%+v)", urls, got)
	}
}

func TestExtractContacts_platforms(t *testing.T) {
	tests := []struct {
		url      string
		platform string
	}{
		{"github.com/jane", "github"},
		{"gitlab.com/jane", "gitlab"},
		{"bitbucket.org/jane", "bitbucket"},
		{"linkedin.com/in/jane", "linkedin"},
		{"twitter.com/jane", "twitter"},
		{"x.com/jane", "twitter"},
		{"stackoverflow.com/users/1", "stackoverflow"},
		{"medium.com/@jane", "medium"},
		{"dev.to/jane", "devto"},
		{"kaggle.com/jane", "kaggle"},
		{"leetcode.com/jane", "leetcode"},
		{"hackerrank.com/jane", "hackerrank"},
		{"behance.net/jane", "behance"},
		{"dribbble.com/jane", "dribbble"},
		{"youtube.com/@jane", "youtube"},
		{"facebook.com/jane", "facebook"},
		{"instagram.com/jane", "instagram"},
		{"example.com/jane", "Website"},
		{"janedoe.dev", "Website"},
	}
	for _, tt := range tests {
		if got := identifyPlatform(tt.url); got != tt.platform {
			t.Errorf("identifyPlatform(%q) = %q, want %q", tt.url, got, tt.platform)
		}
	}
}

func TestExtractContacts_phone(t *testing.T) {
	got := ExtractContacts("Call +1 (555) 123-4567 anytime")
	found := false
	for _, c := range got {
		if c.Kind == "phone" {
			found = true
		}
	}
	if !found {
		t.Errorf("phone not found in %+v", got)
	}
}

func TestExtractContacts_emailNotDoubleCountedAsURL(t *testing.T) {
	got := ExtractContacts("jane@example.com")
	for _, c := range got {
		if c.Kind == "url" {
			t.Errorf("email matched as URL: %+v", c)
		}
	}
}

func TestExtractContacts_shortNumberIgnored(t *testing.T) {
	got := ExtractContacts("In 2019-2023 I grew revenue 40%")
	for _, c := range got {
		if c.Kind == "phone" {
			t.Errorf("year range matched as phone: %+v", c)
		}
	}
}
