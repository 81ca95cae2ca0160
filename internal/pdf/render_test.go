package pdf

import (
	"bytes"
	"strings"
	"testing"
)

func TestIsNumberedSection(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"1. SCOPE OF WORK", true},
		{"2.1. Payment schedule", true},
		{"10. TERMINATION", true},
		{"  3. Indented section", true},
		{"1.2.3. too deep", false},
		{"The client agrees", false},
		{"- bullet item", false},
		{"(a) sub item", false},
	}
	for _, tt := range tests {
		if got := isNumberedSection(tt.line); got != tt.want {
			t.Errorf("isNumberedSection(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestIsAllCapsHeading(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"SCOPE OF WORK", true},
		{"PAYMENT & FEES", true},
		{"IP", false},                     // too short
		{"1. NUMBERED", false},            // starts with digit
		{"SIGN HERE: ___________", false}, // contains underscores
		{"Mixed Case Heading", false},
	}
	for _, tt := range tests {
		if got := isAllCapsHeading(tt.line); got != tt.want {
			t.Errorf("isAllCapsHeading(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestLineClassifiers(t *testing.T) {
	if !isBulletLine("- deliverables include") {
		t.Error("isBulletLine should match '- ' prefix")
	}
	if !isBulletLine("  - nested bullet") {
		t.Error("isBulletLine should match indented bullets")
	}
	if !isSubItemLine("(a) first item") {
		t.Error("isSubItemLine should match '(a) '")
	}
	if isSubItemLine("(A) capitalized") {
		t.Error("isSubItemLine should not match uppercase markers")
	}
	if !isIndentedLine("  indented text") {
		t.Error("isIndentedLine should match two-space indent")
	}
	if !isIndentedLine("\ttabbed") {
		t.Error("isIndentedLine should match tab indent")
	}
	if !isSignatureLine("Signature: ___________") {
		t.Error("isSignatureLine should match underscore runs")
	}
}

func TestSplitPlaceholders(t *testing.T) {
	segments := splitPlaceholders("Payment of [AMOUNT] due by [DATE].")

	want := []segment{
		{text: "Payment of "},
		{text: "[AMOUNT]", isPlaceholder: true},
		{text: " due by "},
		{text: "[DATE]", isPlaceholder: true},
		{text: "."},
	}
	if len(segments) != len(want) {
		t.Fatalf("got %d segments, want %d", len(segments), len(want))
	}
	for i := range want {
		if segments[i] != want[i] {
			t.Errorf("segment[%d] = %+v, want %+v", i, segments[i], want[i])
		}
	}
}

func TestSplitPlaceholdersNoBrackets(t *testing.T) {
	segments := splitPlaceholders("plain contract text")
	if len(segments) != 1 || segments[0].isPlaceholder {
		t.Errorf("got %+v, want single non-placeholder segment", segments)
	}
}

func TestBodyLines(t *testing.T) {
	content := "\n\nFREELANCE SERVICE AGREEMENT\n\n1. SCOPE\nBody text"
	lines := bodyLines(content)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if strings.TrimSpace(lines[1]) != "1. SCOPE" {
		t.Errorf("lines[1] = %q, want '1. SCOPE'", lines[1])
	}
}

func TestRenderTemplateProducesPDF(t *testing.T) {
	content := `FREELANCE SERVICE AGREEMENT

1. SCOPE OF WORK
The freelancer [YOUR NAME] agrees to provide services to [CLIENT NAME].
- Deliverable one
- Deliverable two
(a) first sub-item

SIGNATURES

Freelancer: ___________
[YOUR NAME]

Client: ___________
[CLIENT NAME]
`

	data, err := NewRenderer().RenderTemplate("Freelance Service Agreement", content)
	if err != nil {
		t.Fatalf("RenderTemplate() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("RenderTemplate() returned empty output")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header: %q", data[:8])
	}
}
