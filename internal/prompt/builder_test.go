package prompt

import (
	"testing"

	"github.com/abdulachik/cozyconnect/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestBuildGeneration(t *testing.T) {
	sel := catalog.Selection{
		Theme:       "trust",
		Subtheme:    "betrayal",
		Perspective: "childhood",
		Starter:     "how did",
		Modifier:    "reflective",
		WordLimit:   15,
	}

	p := BuildGeneration(sel)

	assert.Contains(t, p, `"trust" (subtheme: "betrayal")`)
	assert.Contains(t, p, `from the perspective of "childhood"`)
	assert.Contains(t, p, `Start the question with "how did"`)
	assert.Contains(t, p, "Under 15 words")
	assert.Contains(t, p, "reflective")
	assert.NotContains(t, p, "combined with")
}

func TestBuildGeneration_SecondTheme(t *testing.T) {
	sel := catalog.Selection{
		Theme:       "trust",
		Subtheme:    "vulnerability",
		SecondTheme: "friendship",
		Perspective: "the past",
		Starter:     "what experience",
		Modifier:    "poignant",
		WordLimit:   18,
	}

	p := BuildGeneration(sel)
	assert.Contains(t, p, `"trust" combined with "friendship" (subtheme: "vulnerability")`)
}

func TestBuildRefinement(t *testing.T) {
	p := BuildRefinement("What moment taught you about trust?")
	assert.Contains(t, p, "Original question: What moment taught you about trust?")
	assert.Contains(t, p, "Return only the refined question:")
}

func TestBuildValidation(t *testing.T) {
	p := BuildValidation("Do you like dogs?")
	assert.Contains(t, p, "Question: Do you like dogs?")
	assert.Contains(t, p, RefinedMarker)
}

func TestParseValidation(t *testing.T) {
	original := "What moment from your childhood taught you about trust?"

	tests := []struct {
		name  string
		reply string
		want  string
		ok    bool
	}{
		{"valid verdict", "VALID", original, true},
		{"valid verdict lowercase", "valid", original, true},
		{"valid with whitespace", "  VALID\n", original, true},
		{"refined", "Refined version: What experience taught you to trust again?", "What experience taught you to trust again?", true},
		{"refined with preamble", "The question is too broad.\nRefined version: What moment made you trust a friend?", "What moment made you trust a friend?", true},
		{"empty refinement", "Refined version: ", "", false},
		{"garbage", "I cannot judge this.", "", false},
		{"empty reply", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseValidation(tt.reply, original)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
