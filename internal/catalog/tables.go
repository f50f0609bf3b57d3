// Package catalog holds the static generation tables and the random
// parameter selector that seeds each question. All tables are read-only
// after process start.
package catalog

// Theme is a topical category with its sub-categories.
type Theme struct {
	Name      string
	Subthemes []string
}

// Themes is the full theme table. Never mutated.
var Themes = []Theme{
	{"trust", []string{"betrayal", "vulnerability", "building trust", "rebuilding after betrayal", "trusting yourself"}},
	{"friendship", []string{"loyalty", "support", "childhood friends", "forgiveness in friendship", "long-distance friendships"}},
	{"family", []string{"traditions", "conflict resolution", "unconditional love", "family dynamics", "parent-child relationships"}},
	{"love", []string{"romantic love", "self-love", "unrequited love", "first love", "sustaining love over time"}},
	{"change", []string{"adaptation", "growth", "resistance to change", "embracing uncertainty", "transformative experiences"}},
	{"overcoming_challenges", []string{"resilience", "problem-solving", "mental toughness", "seeking help", "personal breakthroughs"}},
	{"learning", []string{"lifelong learning", "learning from failure", "curiosity", "mentorship", "self-directed learning"}},
	{"strengths", []string{"discovering strengths", "using strengths in adversity", "building confidence", "acknowledging weaknesses", "inner resilience"}},
	{"decisions", []string{"making tough choices", "regret and hindsight", "weighing risks", "intuition in decision-making", "decisions that changed your life"}},
	{"purpose", []string{"finding meaning", "career purpose", "life goals", "serving others", "purpose in adversity"}},
	{"success", []string{"defining success", "achieving goals", "celebrating milestones", "sacrifices for success", "learning from success"}},
	{"beliefs", []string{"challenging beliefs", "cultural influences", "core values", "beliefs about yourself", "evolving beliefs"}},
	{"passion", []string{"discovering passions", "pursuing passions", "balancing passion and responsibility", "turning passion into purpose", "reigniting passion"}},
	{"helping_others", []string{"acts of kindness", "mentorship", "volunteering", "making a difference", "helping in unexpected ways"}},
	{"health_and_well-being", []string{"mental health", "physical fitness", "self-care", "work-life balance", "recovering from setbacks"}},
	{"creativity", []string{"inspiration", "creative processes", "overcoming creative blocks", "collaborative creativity", "expressing yourself"}},
	{"cultural_experiences", []string{"travel", "traditions", "cross-cultural understanding", "cultural heritage", "adapting to new cultures"}},
	{"adventures", []string{"unexpected journeys", "outdoor exploration", "adrenaline experiences", "travel stories", "overcoming fear in adventures"}},
	{"achievements", []string{"pride in accomplishments", "overcoming odds", "team achievements", "recognition", "setting new goals"}},
	{"mistakes", []string{"lessons from mistakes", "forgiving yourself", "apologising", "mistakes that shaped you", "moving forward"}},
	{"transition", []string{"life changes", "new beginnings", "endings", "navigating uncertainty", "adapting to new roles"}},
	{"hobbies", []string{"pursuing hobbies", "learning new skills", "hobbies that bring joy", "sharing hobbies", "childhood hobbies"}},
	{"curiosity", []string{"exploring the unknown", "asking questions", "curiosity in learning", "curiosity and creativity", "childlike wonder"}},
}

// Perspectives is the viewpoint table.
var Perspectives = []string{
	"childhood",
	"the past",
	"the present moment",
	"future aspirations",
	"through the eyes of a mentor",
	"from the perspective of a learner",
	"cultural lens",
	"through the lens of gratitude",
	"through the lens of an outsider",
	"through the eyes of a loved one",
	"generational perspective",
	"milestones in life",
	"a turning point",
	"the perspective of hindsight",
}

// ThemeStarters maps a theme name to the phrase starters a question about it
// may open with. Themes absent from this map use DefaultStarters.
var ThemeStarters = map[string][]string{
	"trust":                 {"how did", "what experience", "can you describe", "why do", "what led to", "in what way"},
	"friendship":            {"what moment", "how did", "what does", "can you recall", "why is", "what taught you about"},
	"family":                {"how has", "what role", "how do", "what is your view on", "why do you think", "what example comes to mind"},
	"love":                  {"what taught", "how did", "what does", "in what way", "why is", "how can"},
	"change":                {"how has", "what inspired", "can you describe", "why do you think", "what made", "how did it feel when"},
	"overcoming_challenges": {"how did", "what helped", "what lesson", "can you describe", "why was", "what enabled you to"},
	"learning":              {"what did", "how has", "what moment", "why do you value", "can you share", "how can one"},
	"strengths":             {"how do", "what strength", "in what way", "can you describe", "why is", "what moment revealed"},
	"decisions":             {"how did", "what led to", "why did", "can you explain", "what influenced", "how do you view"},
	"purpose":               {"what gives", "how has", "in what way", "why do", "what taught you about", "can you describe"},
	"success":               {"what does", "how has", "why is", "what example illustrates", "can you recall", "how did it feel"},
	"beliefs":               {"how have", "what shaped", "why do", "can you explain", "what moment challenged", "in what way"},
	"passion":               {"what inspires", "how do", "in what way", "why do you think", "what taught you about", "how has"},
	"helping_others":        {"how did", "what motivated", "why is", "what example comes to mind", "in what way", "how has"},
	"health_and_well-being": {"what practice", "how has", "why do", "in what way", "what role does", "how did"},
	"creativity":            {"what inspires", "how do", "why is", "in what way", "what example", "how has"},
	"cultural_experiences":  {"what did", "how has", "in what way", "why do you value", "what taught", "can you describe"},
	"adventures":            {"what was", "how did", "why is", "can you recall", "what inspired", "how do you feel about"},
	"achievements":          {"what does", "how did", "why is", "what example", "can you recall", "in what way"},
	"mistakes":              {"what lesson", "how did", "why do", "can you explain", "what taught you about", "in what way"},
	"transition":            {"how did", "what led to", "in what way", "why do you think", "what example", "how do you view"},
	"hobbies":               {"what hobby", "how do", "why do", "in what way", "what example", "how has"},
	"curiosity":             {"can you share", "why is", "how has", "why do", "in what way", "what taught", "how do you view"},
}

// DefaultStarters is used when a theme has no entry in ThemeStarters.
var DefaultStarters = []string{"how", "what"}

// EmotionalModifiers is the tone table.
var EmotionalModifiers = []string{
	"joyful",
	"challenging",
	"life-changing",
	"unexpected",
	"empowering",
	"heart-warming",
	"bittersweet",
	"reflective",
	"liberating",
	"uplifting",
	"poignant",
	"intense",
	"resilient",
	"grateful",
	"content",
	"nostalgic",
	"hopeful",
	"compassionate",
	"vulnerable",
	"motivating",
	"cathartic",
	"peaceful",
	"euphoric",
	"fateful",
	"transformative",
	"healing",
	"enlightening",
	"melancholic",
	"surreal",
	"arduous",
	"tumultuous",
	"triumphant",
	"serene",
	"raw",
	"haunting",
	"grounding",
	"optimistic",
	"restorative",
	"thought-provoking",
	"inspiring",
}

// CompatibleThemes maps a theme to themes it may be combined with in a
// single question. Themes absent from this map are never combined.
var CompatibleThemes = map[string][]string{
	"trust":                 {"friendship", "love", "family"},
	"friendship":            {"trust", "helping_others", "hobbies"},
	"family":                {"love", "trust", "transition"},
	"love":                  {"trust", "family", "change"},
	"change":                {"transition", "decisions", "purpose"},
	"overcoming_challenges": {"strengths", "mistakes", "success"},
	"learning":              {"curiosity", "mistakes", "creativity"},
	"strengths":             {"overcoming_challenges", "achievements", "beliefs"},
	"decisions":             {"change", "mistakes", "purpose"},
	"purpose":               {"passion", "helping_others", "beliefs"},
	"success":               {"achievements", "decisions", "strengths"},
	"passion":               {"purpose", "creativity", "hobbies"},
	"helping_others":        {"friendship", "purpose", "family"},
	"creativity":            {"passion", "curiosity", "hobbies"},
	"cultural_experiences":  {"adventures", "beliefs", "curiosity"},
	"adventures":            {"cultural_experiences", "curiosity", "change"},
	"achievements":          {"success", "strengths", "hobbies"},
	"mistakes":              {"learning", "decisions", "change"},
	"transition":            {"change", "family", "decisions"},
	"hobbies":               {"passion", "creativity", "friendship"},
	"curiosity":             {"learning", "creativity", "adventures"},
}

// Timeframe classifies a perspective as past-, present- or future-oriented.
type Timeframe int

const (
	TimeframeNone Timeframe = iota
	TimeframePast
	TimeframePresent
	TimeframeFuture
)

// PerspectiveTimeframes classifies perspectives for the time-sensitive
// theme override. Perspectives absent from this map are never overridden.
var PerspectiveTimeframes = map[string]Timeframe{
	"childhood":                    TimeframePast,
	"the past":                     TimeframePast,
	"generational perspective":     TimeframePast,
	"milestones in life":           TimeframePast,
	"a turning point":              TimeframePast,
	"the perspective of hindsight": TimeframePast,
	"the present moment":           TimeframePresent,
	"through the lens of gratitude": TimeframePresent,
	"future aspirations":           TimeframeFuture,
}

// Time-sensitive theme pools, one per timeframe. Every entry is a member
// of Themes so selection membership holds after an override.
var (
	PastThemes    = []string{"mistakes", "achievements", "learning", "adventures", "transition"}
	PresentThemes = []string{"health_and_well-being", "hobbies", "curiosity", "creativity", "passion"}
	FutureThemes  = []string{"purpose", "change", "decisions", "success", "beliefs"}
)
