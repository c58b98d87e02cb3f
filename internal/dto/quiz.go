package dto

import "time"

// StartQuizRequest creates a new quiz attempt. RetestOf reuses the exact
// question sequence of a prior attempt.
type StartQuizRequest struct {
	Role       string `json:"role" validate:"required"`
	Difficulty string `json:"difficulty,omitempty"`
	RetestOf   string `json:"retest_of,omitempty"`
}

// QuizQuestionResponse is one question as shown to the user. The correct
// answer is withheld until the attempt is graded.
type QuizQuestionResponse struct {
	Type         string   `json:"type"`
	QuestionText string   `json:"question"`
	Options      []string `json:"options"`
}

// QuizAttemptResponse is an ungraded attempt.
type QuizAttemptResponse struct {
	ID             string                 `json:"id"`
	Role           string                 `json:"role"`
	Difficulty     string                 `json:"difficulty"`
	Questions      []QuizQuestionResponse `json:"questions"`
	Status         string                 `json:"status"`
	TotalQuestions int                    `json:"total_questions"`
	RetestOf       string                 `json:"retest_of,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

// RecordAnswerRequest stores one answer by question index.
type RecordAnswerRequest struct {
	QuestionIndex int    `json:"question_index" validate:"gte=0"`
	Option        string `json:"option" validate:"required"`
}

// SubmitQuizRequest grades an attempt with the given answers. Answers
// already recorded one-by-one are kept; this map overrides per index.
type SubmitQuizRequest struct {
	Answers map[int]string `json:"answers"`
}

// GradedQuestionResponse pairs a question with its correct answer and the
// user's choice after grading.
type GradedQuestionResponse struct {
	Type          string   `json:"type"`
	QuestionText  string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	GivenAnswer   string   `json:"given_answer,omitempty"`
	Correct       bool     `json:"correct"`
	Explanation   string   `json:"explanation,omitempty"`
}

// GradedQuizResponse is a graded attempt.
type GradedQuizResponse struct {
	ID             string                   `json:"id"`
	Role           string                   `json:"role"`
	Difficulty     string                   `json:"difficulty"`
	Score          int                      `json:"score"`
	TotalQuestions int                      `json:"total_questions"`
	Status         string                   `json:"status"`
	RetestOf       string                   `json:"retest_of,omitempty"`
	Questions      []GradedQuestionResponse `json:"questions"`
	GradedAt       *time.Time               `json:"graded_at,omitempty"`
}
