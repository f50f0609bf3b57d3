package prompt

// GenerationPrompt is the first-pass instruction template. Arguments:
// modifier, theme clause, perspective, starter, word limit.
const GenerationPrompt = `Generate a %s and thought-provoking open-ended question about the theme: %s, from the perspective of "%s". Start the question with "%s".

MUST BE:
- Personal and conversational
- Under %d words
- Encourage sharing of a story, experience, insight or opinion
AVOID:
- Trivial or overly simple questions (e.g., "What did you eat today?")
- Abstract or overly philosophical phrasing
- Close-ended questions
- Incorrect grammar
- Addressing to self using words like 'I' and 'My' (e.g., "What memory from my past still influences my beliefs today?")
- Questions that are too broad (e.g., "What was your best adventure?")

Example of a good question:
- What moment from your childhood taught you about trust?

Return only the question.`

// RefinementPrompt asks the model to unconditionally rewrite a first-pass
// question against the same criteria. Argument: the question.
const RefinementPrompt = `Refine this question to improve its quality and to meet all criteria:
- Personal and conversational
- Clear and easy to understand
- At 8th grade reading level
- Open-ended (cannot be answered with just 'Yes' or 'No')
- Correct grammar and punctuation
- Avoids trivial, vague, overly simple, or abstract questions
- Encourages sharing of a story, experience, insight, or opinion
- Uses "you/your" instead of "I/me/my"
- Avoids compound questions (Asks only one question)

Original question: %s

Return only the refined question:`

// ValidationPrompt asks the model to judge a question and, when it falls
// short, to supply a rewrite behind the RefinedMarker. Argument: the question.
const ValidationPrompt = `Judge whether this question meets all of the following criteria:
- Personal and conversational
- Clear and easy to understand
- Open-ended (cannot be answered with just 'Yes' or 'No')
- Correct grammar and punctuation
- Encourages sharing of a story, experience, insight, or opinion
- Uses "you/your" instead of "I/me/my"
- Asks only one question

Question: %s

If the question meets every criterion, respond with exactly:
VALID

Otherwise respond with:
Refined version: <your rewritten question>`
