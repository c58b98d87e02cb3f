package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hireready/internal/domain"
)

// JSONColumn persists any JSON-serializable value in a CLOB column.
type JSONColumn[T any] struct {
	Val T
}

// Value implements the driver.Valuer interface.
func (j JSONColumn[T]) Value() (driver.Value, error) {
	data, err := json.Marshal(j.Val)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface.
func (j *JSONColumn[T]) Scan(value interface{}) error {
	if value == nil {
		var zero T
		j.Val = zero
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("JSONColumn Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(data) == 0 || string(data) == "null" {
		var zero T
		j.Val = zero
		return nil
	}
	return json.Unmarshal(data, &j.Val)
}

// StringSlice is a custom type for handling string arrays as JSON text.
type StringSlice []string

// Value implements the driver.Valuer interface.
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface.
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// QuizAttempt is the persistence model for a quiz attempt. Questions and
// answers are stored as JSON text so the exact question sequence can be
// reconstructed for retests.
type QuizAttempt struct {
	ID             string                            `db:"ID"`
	Role           string                            `db:"ROLE"`
	Difficulty     string                            `db:"DIFFICULTY"`
	Questions      JSONColumn[[]domain.QuizQuestion] `db:"QUESTIONS"`
	Answers        JSONColumn[map[int]string]        `db:"ANSWERS"`
	Score          int                               `db:"SCORE"`
	TotalQuestions int                               `db:"TOTAL_QUESTIONS"`
	Status         string                            `db:"STATUS"`
	RetestOf       sql.NullString                    `db:"RETEST_OF"`
	CreatedAt      time.Time                         `db:"CREATED_AT"`
	GradedAt       sql.NullTime                      `db:"GRADED_AT"`
}

// EvaluationSnapshot is the persistence model for a stored evaluation.
type EvaluationSnapshot struct {
	ID               string                           `db:"ID"`
	ResumePreview    string                           `db:"RESUME_PREVIEW"`
	GitHubUsername   sql.NullString                   `db:"GITHUB_USERNAME"`
	LeetCodeUsername sql.NullString                   `db:"LEETCODE_USERNAME"`
	Certifications   StringSlice                      `db:"CERTIFICATIONS"`
	Features         JSONColumn[domain.FeatureVector] `db:"FEATURES"`
	Score            int                              `db:"SCORE"`
	Category         string                           `db:"CATEGORY"`
	RecommendedRoles JSONColumn[[]domain.RoleScore]   `db:"RECOMMENDED_ROLES"`
	CreatedAt        time.Time                        `db:"CREATED_AT"`
}
