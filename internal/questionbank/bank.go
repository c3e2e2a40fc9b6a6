package questionbank

import "fmt"

// Question is a single multiple-choice career test question. The option
// order is significant and fixed.
type Question struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// OptionCount is the fixed cardinality of every question's option list.
const OptionCount = 5

var questions = []Question{
	{
		Text: "Which type of tasks energize you the most?",
		Options: []string{
			"Solving complex problems or puzzles",
			"Creating art, design, or content",
			"Analyzing data or identifying patterns",
			"Helping or mentoring others",
			"Organizing, planning, or leading projects",
		},
	},
	{
		Text: "Which environment do you feel most productive in?",
		Options: []string{
			"Structured office environment",
			"Flexible or remote workspace",
			"Laboratory / research-focused setting",
			"Fieldwork or hands-on environment",
			"Startup or dynamic fast-paced environment",
		},
	},
	{
		Text: "What type of work outcome excites you the most?",
		Options: []string{
			"Technical achievements and problem-solving",
			"Innovative or visually creative output",
			"Insights from data and research",
			"Positive impact on people’s lives",
			"Successful team or project management",
		},
	},
	{
		Text: "Which of these skills do you consider your strongest?",
		Options: []string{
			"Coding, algorithms, or programming",
			"Design, creativity, or storytelling",
			"Data analysis, statistics, or logic",
			"Communication, empathy, or leadership",
			"Organization, strategy, or planning",
		},
	},
	{
		Text: "What motivates you the most in a career?",
		Options: []string{
			"Innovation and technical mastery",
			"Recognition and creative expression",
			"Solving real-world problems",
			"Helping and mentoring others",
			"Financial growth and stability",
		},
	},
	{
		Text: "Which learning style suits you best?",
		Options: []string{
			"Self-paced technical learning",
			"Hands-on creative practice",
			"Analyzing case studies and data",
			"Interactive group discussions",
			"Structured courses and mentorship",
		},
	},
	{
		Text: "How do you handle challenges at work?",
		Options: []string{
			"Systematically solve problems step by step",
			"Brainstorm multiple creative solutions",
			"Use data and logic to make decisions",
			"Seek advice or support from others",
			"Plan strategically and manage risks",
		},
	},
	{
		Text: "How important is work-life balance for you?",
		Options: []string{
			"Moderately important",
			"Very important, flexible hours are a must",
			"I can prioritize work over balance temporarily",
			"Balance is crucial for long-term success",
			"Depends on career growth opportunities",
		},
	},
	{
		Text: "Which type of career achievements are most appealing?",
		Options: []string{
			"Building innovative products or solutions",
			"Creating influential creative work",
			"Discovering insights from complex data",
			"Improving people's lives or well-being",
			"Leading teams or projects successfully",
		},
	},
	{
		Text: "How do you prefer to work?",
		Options: []string{
			"Independently on focused tasks",
			"In small creative teams",
			"Collaboratively analyzing data or research",
			"With people directly to help or coach them",
			"Leading and coordinating groups",
		},
	},
	{
		Text: "Which industries excite you the most?",
		Options: []string{
			"Technology, AI, and software",
			"Media, design, and creative arts",
			"Finance, analytics, and research",
			"Healthcare, education, or social impact",
			"Entrepreneurship and business strategy",
		},
	},
}

// Questions returns the full ordered bank. Callers must not mutate it.
func Questions() []Question {
	return questions
}

// Len returns the number of questions in the bank.
func Len() int {
	return len(questions)
}

// Validate checks that index is in range and option is one of that
// question's five option strings.
func Validate(index int, option string) error {
	if index < 0 || index >= len(questions) {
		return fmt.Errorf("question index %d out of range [0,%d)", index, len(questions))
	}
	for _, o := range questions[index].Options {
		if o == option {
			return nil
		}
	}
	return fmt.Errorf("option %q is not valid for question %d", option, index+1)
}
