package catalog

import (
	"math/rand"
	"sync"
	"time"
)

// Probability of combining a compatible second theme, and of overriding the
// theme from the perspective's time-sensitive pool.
const (
	combineChance  = 0.3
	overrideChance = 0.3
)

// Selection is one concrete combination of generation parameters. It lives
// for a single request and is never shared.
type Selection struct {
	Theme       string
	Subtheme    string
	SecondTheme string // empty unless a compatible theme was joined
	Perspective string
	Starter     string
	Modifier    string
	WordLimit   int
}

// SelectorConfig holds configuration for the selector.
type SelectorConfig struct {
	WordLimitMin int
	WordLimitMax int
	Rand         *rand.Rand // optional, defaults to a time-seeded source
}

// Selector draws random generation parameters from the static tables.
// Safe for concurrent use; rand.Rand is not, so draws take the mutex.
type Selector struct {
	wordMin int
	wordMax int

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSelector creates a selector. The zero word-limit range defaults to [12,20].
func NewSelector(cfg SelectorConfig) *Selector {
	min, max := cfg.WordLimitMin, cfg.WordLimitMax
	if min <= 0 || max < min {
		min, max = 12, 20
	}
	rnd := cfg.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UTC().UnixNano()))
	}
	return &Selector{wordMin: min, wordMax: max, rnd: rnd}
}

// Select draws one combination. It always succeeds; every table is
// non-empty by construction.
func (s *Selector) Select() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	theme := Themes[s.rnd.Intn(len(Themes))]
	perspective := Perspectives[s.rnd.Intn(len(Perspectives))]

	// Time-sensitive override: replace the theme with one matching the
	// perspective's timeframe.
	if tf, ok := PerspectiveTimeframes[perspective]; ok && s.rnd.Float64() < overrideChance {
		var pool []string
		switch tf {
		case TimeframePast:
			pool = PastThemes
		case TimeframePresent:
			pool = PresentThemes
		case TimeframeFuture:
			pool = FutureThemes
		}
		if len(pool) > 0 {
			theme = themeByName(pool[s.rnd.Intn(len(pool))])
		}
	}

	sel := Selection{
		Theme:       theme.Name,
		Subtheme:    theme.Subthemes[s.rnd.Intn(len(theme.Subthemes))],
		Perspective: perspective,
		Modifier:    EmotionalModifiers[s.rnd.Intn(len(EmotionalModifiers))],
		WordLimit:   s.wordMin + s.rnd.Intn(s.wordMax-s.wordMin+1),
	}

	starters, ok := ThemeStarters[sel.Theme]
	if !ok || len(starters) == 0 {
		starters = DefaultStarters
	}
	sel.Starter = starters[s.rnd.Intn(len(starters))]

	// Compatible-theme join.
	if companions, ok := CompatibleThemes[sel.Theme]; ok && len(companions) > 0 && s.rnd.Float64() < combineChance {
		sel.SecondTheme = companions[s.rnd.Intn(len(companions))]
	}

	return sel
}

// Fallback returns a canned question for the perspective.
func (s *Selector) Fallback(perspective string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	pool, ok := FallbackQuestions[perspective]
	if !ok || len(pool) == 0 {
		pool = GenericFallbacks
	}
	return pool[s.rnd.Intn(len(pool))]
}

func themeByName(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	// Pool entries are checked against Themes by tests; unreachable in practice.
	return Themes[0]
}
