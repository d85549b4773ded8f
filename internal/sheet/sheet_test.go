package sheet

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Variables", "variables"},
		{"Command substitution", "command-substitution"},
		{"File I/O", "file-io"},
		{"File IO", "file-io"},
		{"  Spaced  Out  ", "spaced-out"},
		{"JSON", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.expected)
			}
		})
	}
}

func TestParse(t *testing.T) {
	md := "# Title\n\nintro\n\n## One\n\nfirst body\n\n## Two Words\n\nsecond body\n"
	s := Parse(md)

	var slugs []string
	for _, topic := range s.Topics() {
		slugs = append(slugs, topic.Slug)
	}
	if diff := cmp.Diff([]string{"one", "two-words"}, slugs); diff != "" {
		t.Errorf("Topics() mismatch (-want +got):\n%s", diff)
	}

	body, err := s.Section("one")
	if err != nil {
		t.Fatalf("Section() unexpected error = %v", err)
	}
	if !strings.Contains(body, "first body") {
		t.Errorf("Section(one) = %q, missing body", body)
	}
	if !strings.HasPrefix(body, "## One") {
		t.Errorf("Section(one) should start with its heading, got %q", body)
	}
}

func TestSection_PrefixMatch(t *testing.T) {
	s := Embedded()

	body, err := s.Section("cond")
	if err != nil {
		t.Fatalf("Section() unexpected error = %v", err)
	}
	if !strings.Contains(body, "## Conditionals") {
		t.Errorf("Section(cond) did not resolve to conditionals")
	}
}

func TestSection_Ambiguous(t *testing.T) {
	s := Embedded()

	// "co" matches both conditionals and command-substitution.
	_, err := s.Section("co")
	if err == nil {
		t.Fatal("Section() expected ambiguity error")
	}
	if !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("Section(co) error = %v, want ambiguity", err)
	}
}

func TestSection_Unknown(t *testing.T) {
	s := Embedded()

	_, err := s.Section("quux")
	if err == nil {
		t.Fatal("Section() expected error for unknown topic")
	}
	if !strings.Contains(err.Error(), "valid topics") {
		t.Errorf("Section(quux) error = %v, want topic list", err)
	}
}

func TestEmbedded_CoversAdvertisedTopics(t *testing.T) {
	s := Embedded()

	want := []string{
		"variables", "conditionals", "loops", "arrays", "functions",
		"file-io", "arithmetic", "command-substitution",
		"environment-variables", "strings", "regex", "globbing", "json",
	}
	for _, slug := range want {
		if _, err := s.Section(slug); err != nil {
			t.Errorf("Section(%q) unexpected error = %v", slug, err)
		}
	}
}

func TestFull_RoundTripsAllSections(t *testing.T) {
	s := Embedded()
	full := s.Full()

	for _, topic := range s.Topics() {
		if !strings.Contains(full, "## "+topic.Title) {
			t.Errorf("Full() missing section %q", topic.Title)
		}
	}
}

func TestRender(t *testing.T) {
	out, err := Render("# Heading\n\nbody\n", "notty", 80)
	if err != nil {
		t.Fatalf("Render() unexpected error = %v", err)
	}
	if !strings.Contains(out, "Heading") {
		t.Errorf("Render() = %q, missing heading text", out)
	}
}

func TestRender_BadStyle(t *testing.T) {
	if _, err := Render("hi", "no-such-style", 80); err == nil {
		t.Fatal("Render() expected error for unknown style")
	}
}
