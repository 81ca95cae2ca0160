package pdf

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Line classification for template content. Templates are stored as
// plain text; layout is inferred per line.

var (
	numberedSectionRe = regexp.MustCompile(`^\d+(\.\d+)?\.(\s|$)`)
	allCapsHeadingRe  = regexp.MustCompile(`^[A-Z][A-Z\s&/–-]+$`)
	bulletRe          = regexp.MustCompile(`^\s*-\s`)
	subItemRe         = regexp.MustCompile(`^\s*\([a-z]\)\s`)
	partyLabelRe      = regexp.MustCompile(`(?i)^(Freelancer|Client|Party [AB]|Developer|Designer|Producer|Party):`)
	placeholderRe     = regexp.MustCompile(`(\[[^\]]+\])`)
	startsWithDigitRe = regexp.MustCompile(`^\d`)
)

func isNumberedSection(line string) bool {
	return numberedSectionRe.MatchString(strings.TrimSpace(line))
}

func isAllCapsHeading(line string) bool {
	t := strings.TrimSpace(line)
	return len(t) >= 3 &&
		allCapsHeadingRe.MatchString(t) &&
		!strings.Contains(t, "_") &&
		!startsWithDigitRe.MatchString(t)
}

func isBulletLine(line string) bool {
	return bulletRe.MatchString(line)
}

func isSubItemLine(line string) bool {
	return subItemRe.MatchString(line)
}

func isIndentedLine(line string) bool {
	return strings.HasPrefix(line, "  ") || strings.HasPrefix(line, "\t")
}

func isSignatureLine(line string) bool {
	return strings.Contains(line, "___")
}

type segment struct {
	text          string
	isPlaceholder bool
}

// splitPlaceholders isolates [BRACKET PLACEHOLDERS] so they can be
// highlighted in the rendered document.
func splitPlaceholders(text string) []segment {
	var segments []segment
	last := 0
	for _, loc := range placeholderRe.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, segment{text: text[last:loc[0]]})
		}
		segments = append(segments, segment{text: text[loc[0]:loc[1]], isPlaceholder: true})
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, segment{text: text[last:]})
	}
	return segments
}

// Renderer produces branded template PDFs.
type Renderer struct{}

// NewRenderer creates a template PDF renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

const (
	pageMargin = 19.5 // mm, matches the web layout's 55pt gutters
	lineHeight = 5.2
)

// RenderTemplate renders a template's plain-text content into a
// paginated, branded PDF document.
func (r *Renderer) RenderTemplate(name, content string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(name, true)
	doc.SetAuthor("FreelanceShield", true)
	doc.SetCreator("FreelanceShield", true)
	doc.SetMargins(pageMargin, 24, pageMargin)
	doc.SetAutoPageBreak(true, 26)
	doc.AliasNbPages("")

	generated := time.Now().Format("January 2, 2006")

	doc.SetHeaderFunc(func() {
		// Top accent stripe
		doc.SetFillColor(37, 99, 235)
		doc.Rect(0, 0, 210, 1.8, "F")

		doc.SetY(10)
		doc.SetFont("Helvetica", "B", 11)
		doc.SetTextColor(30, 64, 175)
		doc.CellFormat(120, 5, "FREELANCESHIELD", "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(148, 163, 184)
		doc.CellFormat(0, 5, "Generated "+generated, "", 1, "R", false, 0, "")

		doc.SetFont("Helvetica", "", 7.5)
		doc.SetTextColor(100, 116, 139)
		doc.CellFormat(0, 4, "AI-Powered Contract Protection", "", 1, "L", false, 0, "")

		doc.SetDrawColor(226, 232, 240)
		doc.SetLineWidth(0.3)
		doc.Line(pageMargin, doc.GetY()+1.5, 210-pageMargin, doc.GetY()+1.5)
		doc.SetY(doc.GetY() + 6)
	})

	doc.SetFooterFunc(func() {
		doc.SetY(-18)
		doc.SetDrawColor(226, 232, 240)
		doc.SetLineWidth(0.2)
		doc.Line(pageMargin, doc.GetY(), 210-pageMargin, doc.GetY())
		doc.SetY(doc.GetY() + 2)
		doc.SetFont("Helvetica", "", 7.5)
		doc.SetTextColor(148, 163, 184)
		doc.CellFormat(120, 4, "FreelanceShield - Not legal advice. For informational purposes only.", "", 0, "L", false, 0, "")
		doc.CellFormat(0, 4, "Page "+strconv.Itoa(doc.PageNo())+" of {nb}", "", 0, "R", false, 0, "")
	})

	doc.AddPage()

	// Title block from the first non-empty content line's counterpart:
	// the template name, rendered separately from the body.
	doc.SetFont("Helvetica", "B", 17)
	doc.SetTextColor(15, 23, 42)
	doc.MultiCell(0, 8, strings.ToUpper(name), "", "C", false)
	doc.SetFont("Helvetica", "I", 8.5)
	doc.SetTextColor(100, 116, 139)
	doc.CellFormat(0, 5, "Fill in all [highlighted fields] before signing", "", 1, "C", false, 0, "")
	doc.SetDrawColor(37, 99, 235)
	doc.SetLineWidth(0.5)
	doc.Line(pageMargin, doc.GetY()+2, 210-pageMargin, doc.GetY()+2)
	doc.SetY(doc.GetY() + 8)

	r.renderBody(doc, bodyLines(content))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// bodyLines strips the title line (first non-empty line) from the
// content since the title is rendered separately.
func bodyLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			return lines[i+1:]
		}
	}
	return lines
}

func (r *Renderer) renderBody(doc *fpdf.Fpdf, lines []string) {
	inSignatureSection := false
	signaturesRendered := 0

	for i := 0; i < len(lines); i++ {
		raw := lines[i]
		trimmed := strings.TrimSpace(raw)

		if trimmed == "" {
			doc.Ln(2.5)
			continue
		}

		if trimmed == "SIGNATURES" || trimmed == "SIGNATURE" {
			inSignatureSection = true
			doc.Ln(6)
			doc.SetDrawColor(226, 232, 240)
			doc.SetLineWidth(0.3)
			doc.Line(pageMargin, doc.GetY(), 210-pageMargin, doc.GetY())
			doc.Ln(5)
			r.writeSectionHeader(doc, "SIGNATURES")
			continue
		}

		if inSignatureSection {
			if isSignatureLine(trimmed) {
				continue
			}
			if partyLabelRe.MatchString(trimmed) && signaturesRendered < 2 {
				label := strings.TrimSpace(trimmed[:strings.Index(trimmed, ":")])
				caption := "[" + strings.ToUpper(label) + " NAME]"
				if i+1 < len(lines) {
					next := strings.TrimSpace(lines[i+1])
					if strings.HasPrefix(next, "[") {
						caption = next
						i++
					}
				}
				r.writeSignatureBlock(doc, label, caption)
				signaturesRendered++
				continue
			}
			// Everything else inside the signature section is skipped
			continue
		}

		switch {
		case isNumberedSection(trimmed), isAllCapsHeading(trimmed):
			r.writeSectionHeader(doc, trimmed)
		case isBulletLine(raw):
			content := bulletRe.ReplaceAllString(raw, "")
			doc.SetX(pageMargin + 5)
			doc.SetFont("Helvetica", "", 9.5)
			doc.SetTextColor(37, 99, 235)
			doc.CellFormat(4, lineHeight, "\x95", "", 0, "L", false, 0, "")
			r.writeFlowingText(doc, strings.TrimSpace(content), pageMargin+9)
		case isSubItemLine(raw), isIndentedLine(raw):
			doc.SetX(pageMargin + 5)
			r.writeFlowingText(doc, trimmed, pageMargin+5)
		case isSignatureLine(trimmed):
			// Underscore rules outside the signature section are skipped
		default:
			r.writeFlowingText(doc, trimmed, pageMargin)
		}
	}
}

func (r *Renderer) writeSectionHeader(doc *fpdf.Fpdf, text string) {
	doc.Ln(3)
	doc.SetFont("Helvetica", "B", 9.5)
	doc.SetTextColor(29, 78, 216)
	doc.MultiCell(0, lineHeight, strings.ToUpper(text), "", "L", false)
	doc.Ln(0.5)
}

// writeFlowingText writes one logical line, highlighting bracket
// placeholders in amber italics so fillable fields stand out.
func (r *Renderer) writeFlowingText(doc *fpdf.Fpdf, text string, leftX float64) {
	doc.SetLeftMargin(leftX)
	doc.SetX(leftX)

	for _, seg := range splitPlaceholders(text) {
		if seg.isPlaceholder {
			doc.SetFont("Helvetica", "I", 9.5)
			doc.SetTextColor(146, 64, 14)
		} else {
			doc.SetFont("Helvetica", "", 9.5)
			doc.SetTextColor(30, 41, 59)
		}
		doc.Write(lineHeight, seg.text)
	}
	doc.SetLeftMargin(pageMargin)
	doc.Ln(lineHeight)
}

func (r *Renderer) writeSignatureBlock(doc *fpdf.Fpdf, label, caption string) {
	doc.Ln(3)
	doc.SetFont("Helvetica", "B", 8)
	doc.SetTextColor(100, 116, 139)
	doc.CellFormat(100, 4, label, "", 0, "L", false, 0, "")
	doc.CellFormat(0, 4, "Date", "", 1, "L", false, 0, "")

	doc.Ln(8)
	y := doc.GetY()
	doc.SetDrawColor(148, 163, 184)
	doc.SetLineWidth(0.3)
	doc.Line(pageMargin, y, pageMargin+85, y)
	doc.Line(pageMargin+100, y, 210-pageMargin, y)

	doc.Ln(1.5)
	doc.SetFont("Helvetica", "I", 7.5)
	doc.SetTextColor(148, 163, 184)
	doc.CellFormat(100, 4, caption, "", 1, "L", false, 0, "")
	doc.Ln(4)
}
