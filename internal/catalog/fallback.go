package catalog

// FallbackQuestions maps a perspective to statically authored questions
// returned when generation fails entirely. Perspectives without an entry
// draw from GenericFallbacks.
var FallbackQuestions = map[string][]string{
	"childhood": {
		"What games did you love playing as a child?",
		"What childhood memory still makes you smile today?",
		"What place from your childhood do you wish you could visit again?",
	},
	"the past": {
		"What moment from your past taught you the most about yourself?",
		"What old habit are you glad you left behind?",
	},
	"the present moment": {
		"What small thing brought you joy today?",
		"What are you most grateful for right now?",
	},
	"future aspirations": {
		"What dream are you working towards at the moment?",
		"What would you love to learn in the next few years?",
	},
	"through the eyes of a mentor": {
		"What advice do you find yourself giving most often?",
		"What lesson took you the longest to learn?",
	},
	"from the perspective of a learner": {
		"What skill did you find surprisingly hard to pick up?",
		"What has a recent failure taught you?",
	},
	"cultural lens": {
		"What tradition from your culture means the most to you?",
		"What custom from another culture do you admire?",
	},
	"through the lens of gratitude": {
		"Who has helped you in a way you can never repay?",
		"What everyday comfort do you appreciate the most?",
	},
	"through the lens of an outsider": {
		"What about your daily routine would surprise a stranger?",
		"What part of your life would look unusual from the outside?",
	},
	"through the eyes of a loved one": {
		"What would your closest friend say is your best quality?",
		"What do the people who love you worry about for you?",
	},
	"generational perspective": {
		"What value from your grandparents' generation do you want to keep alive?",
		"What do you hope the next generation does differently?",
	},
	"milestones in life": {
		"What milestone are you proudest of reaching?",
		"What moment felt like the start of a new chapter for you?",
	},
	"a turning point": {
		"What decision changed the direction of your life?",
		"What unexpected event turned out to be a blessing?",
	},
	"the perspective of hindsight": {
		"What would you tell your younger self if you could?",
		"What worry from years ago seems small to you now?",
	},
}

// GenericFallbacks covers perspectives missing from FallbackQuestions.
var GenericFallbacks = []string{
	"What experience shaped who you are today?",
	"What story from your life do you love telling?",
	"What moment are you most grateful for?",
}
