package questions

import (
	"fmt"
	"strings"
)

const promptTemplate = `Given a candidate with the following background:

Skills: %s
Projects: %s

Generate 10 technical interview questions that:
1. Focus primarily on assessing the listed skills
2. Include practical scenarios based on their project experience
3. Test both theoretical knowledge and practical application
4. Are challenging but appropriate for their experience level

Provide only the questions as a numbered list, without any additional text.`

// BuildPrompt renders the fixed question-generation prompt. The
// 10-question numbered-list instruction is advisory to the model; the
// output parser does not enforce it.
func BuildPrompt(skills []string, projects string) string {
	return fmt.Sprintf(promptTemplate, strings.Join(skills, ", "), projects)
}
