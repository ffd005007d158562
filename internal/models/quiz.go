package models

// QuizQuestion is a single multiple-choice question. Questions are
// generated on demand and never persisted. The correct answer always
// appears exactly once in Options.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Image         string   `json:"image,omitempty"`
}
