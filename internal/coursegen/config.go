package coursegen

// Config bounds a draft request.
type Config struct {
	// LessonCount is how many lessons the draft should contain.
	LessonCount int

	// StepsPerLesson is the target step count per lesson.
	StepsPerLesson int

	// MaxTokens caps the LLM response size.
	MaxTokens int

	// Temperature for generation. Drafts benefit from a little variety.
	Temperature float64
}

// DefaultConfig returns drafting defaults sized for a short course.
func DefaultConfig() Config {
	return Config{
		LessonCount:    3,
		StepsPerLesson: 6,
		MaxTokens:      8192,
		Temperature:    0.7,
	}
}
