// Package prompt renders the natural-language instructions sent to the
// completion provider.
package prompt

import (
	"fmt"
	"strings"

	"github.com/abdulachik/cozyconnect/internal/catalog"
)

// RefinedMarker prefixes a rewritten question in a validation reply.
const RefinedMarker = "Refined version:"

// ValidReply is the verbatim reply for a question that passes validation.
const ValidReply = "VALID"

// BuildGeneration renders the first-pass instruction for a selection.
func BuildGeneration(sel catalog.Selection) string {
	themeClause := fmt.Sprintf("%q (subtheme: %q)", sel.Theme, sel.Subtheme)
	if sel.SecondTheme != "" {
		themeClause = fmt.Sprintf("%q combined with %q (subtheme: %q)", sel.Theme, sel.SecondTheme, sel.Subtheme)
	}
	return fmt.Sprintf(GenerationPrompt, sel.Modifier, themeClause, sel.Perspective, sel.Starter, sel.WordLimit)
}

// BuildRefinement renders the unconditional-rewrite instruction.
func BuildRefinement(question string) string {
	return fmt.Sprintf(RefinementPrompt, question)
}

// BuildValidation renders the judge-and-rewrite instruction.
func BuildValidation(question string) string {
	return fmt.Sprintf(ValidationPrompt, question)
}

// ParseValidation interprets a validation reply. It returns the question to
// keep and whether the reply carried a usable verdict. A VALID verdict keeps
// the original; a RefinedMarker reply yields the rewrite.
func ParseValidation(reply, original string) (string, bool) {
	reply = strings.TrimSpace(reply)
	if strings.EqualFold(reply, ValidReply) {
		return original, true
	}
	if idx := strings.Index(reply, RefinedMarker); idx >= 0 {
		refined := strings.TrimSpace(reply[idx+len(RefinedMarker):])
		if refined != "" {
			return refined, true
		}
	}
	return "", false
}
