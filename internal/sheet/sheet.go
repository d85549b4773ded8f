// Package sheet serves the embedded Bash/Python cheat sheet, split into
// topics by level-two heading, and renders Markdown for the terminal.
package sheet

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
)

//go:embed cheatsheet.md
var cheatsheet string

// Topic is one section of the cheat sheet.
type Topic struct {
	Slug  string
	Title string
	Body  string // includes the heading line
}

// Sheet is a parsed cheat sheet.
type Sheet struct {
	preamble string
	topics   []Topic
	bySlug   map[string]int
}

// Embedded parses the cheat sheet compiled into the binary.
func Embedded() *Sheet {
	return Parse(cheatsheet)
}

// Parse splits Markdown into topics on "## " headings. Content before
// the first level-two heading becomes the preamble.
func Parse(md string) *Sheet {
	s := &Sheet{bySlug: make(map[string]int)}

	var current *Topic
	var preamble strings.Builder
	var body strings.Builder

	flush := func() {
		if current == nil {
			return
		}
		current.Body = strings.TrimRight(body.String(), "\n") + "\n"
		s.bySlug[current.Slug] = len(s.topics)
		s.topics = append(s.topics, *current)
		body.Reset()
	}

	for _, line := range strings.SplitAfter(md, "\n") {
		if title, ok := strings.CutPrefix(strings.TrimRight(line, "\n"), "## "); ok {
			flush()
			current = &Topic{Slug: Slugify(title), Title: title}
			body.WriteString(line)
			continue
		}
		if current == nil {
			preamble.WriteString(line)
		} else {
			body.WriteString(line)
		}
	}
	flush()

	s.preamble = preamble.String()
	return s
}

// Slugify lowercases a title and joins its alphanumeric runs with
// hyphens: "Command substitution" -> "command-substitution",
// "File I/O" -> "file-io".
func Slugify(title string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		case r == ' ' || r == '-':
			pendingSep = true
		}
	}
	return b.String()
}

// Topics returns all topics in document order.
func (s *Sheet) Topics() []Topic {
	return s.topics
}

// Full returns the entire sheet as Markdown.
func (s *Sheet) Full() string {
	var b strings.Builder
	b.WriteString(s.preamble)
	for _, t := range s.topics {
		b.WriteString(t.Body)
		b.WriteString("\n")
	}
	return b.String()
}

// Section returns the Markdown for a single topic. The query matches a
// slug exactly, or as an unambiguous prefix.
func (s *Sheet) Section(query string) (string, error) {
	slug := Slugify(query)
	if i, ok := s.bySlug[slug]; ok {
		return s.topics[i].Body, nil
	}

	var matches []string
	for _, t := range s.topics {
		if strings.HasPrefix(t.Slug, slug) {
			matches = append(matches, t.Slug)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unknown topic %q; valid topics: %s", query, strings.Join(s.slugs(), ", "))
	case 1:
		return s.topics[s.bySlug[matches[0]]].Body, nil
	default:
		sort.Strings(matches)
		return "", fmt.Errorf("ambiguous topic %q matches: %s", query, strings.Join(matches, ", "))
	}
}

func (s *Sheet) slugs() []string {
	out := make([]string, len(s.topics))
	for i, t := range s.topics {
		out[i] = t.Slug
	}
	return out
}

// Render converts Markdown to styled terminal output. Style "auto"
// follows the terminal background; anything else is passed to glamour
// as a style name.
func Render(md, style string, wrap int) (string, error) {
	var opts []glamour.TermRendererOption
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(style))
	}
	opts = append(opts, glamour.WithWordWrap(wrap))

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
