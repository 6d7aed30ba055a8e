package insight

import "strings"

// SegmentKind classifies a rendered line of the model's response.
type SegmentKind int

const (
	Heading SegmentKind = iota
	Bullet
	Paragraph
)

// Segment is one renderable line of the narrative review.
type Segment struct {
	Kind SegmentKind
	Text string
}

// ParseResponse splits the model's markdown-ish response into heading,
// bullet, and paragraph segments. Blank lines are dropped; marker characters
// are stripped from the text.
func ParseResponse(text string) []Segment {
	var segments []Segment
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "#"):
			heading := strings.TrimSpace(strings.TrimLeft(line, "#"))
			if heading == "" {
				continue
			}
			segments = append(segments, Segment{Kind: Heading, Text: heading})
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "), strings.HasPrefix(line, "• "):
			for _, marker := range []string{"- ", "* ", "• "} {
				if strings.HasPrefix(line, marker) {
					line = strings.TrimSpace(strings.TrimPrefix(line, marker))
					break
				}
			}
			segments = append(segments, Segment{Kind: Bullet, Text: line})
		default:
			segments = append(segments, Segment{Kind: Paragraph, Text: line})
		}
	}
	return segments
}
