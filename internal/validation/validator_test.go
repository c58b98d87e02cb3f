package validation

import (
	"testing"

	"hireready/internal/domain"
	"hireready/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(errs domain.ValidationErrors) []string {
	names := make([]string, len(errs))
	for i, e := range errs {
		names[i] = e.Field
	}
	return names
}

func TestValidateEvaluateRequest(t *testing.T) {
	v := NewValidator()

	err := v.ValidateEvaluateRequest(&dto.EvaluateRequest{ResumeText: "Python developer"})
	assert.NoError(t, err)

	err = v.ValidateEvaluateRequest(&dto.EvaluateRequest{})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, fieldNames(verrs), "resume_text")

	err = v.ValidateEvaluateRequest(&dto.EvaluateRequest{ResumeText: "   \n\t "})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, fieldNames(verrs), "resume_text")

	bad := 11.0
	err = v.ValidateEvaluateRequest(&dto.EvaluateRequest{ResumeText: "x", CGPA: &bad})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, fieldNames(verrs), "cgpa")
}

func TestValidateMatchRequest(t *testing.T) {
	v := NewValidator()

	err := v.ValidateMatchRequest(&dto.MatchRequest{
		Candidates: []dto.CandidateProfileRequest{{Ref: "c1", ResumeScore: 80}},
	})
	assert.NoError(t, err)

	err = v.ValidateMatchRequest(&dto.MatchRequest{})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, fieldNames(verrs), "candidates")

	err = v.ValidateMatchRequest(&dto.MatchRequest{
		Candidates: []dto.CandidateProfileRequest{{Ref: "  ", ResumeScore: 120}},
	})
	require.ErrorAs(t, err, &verrs)
	names := fieldNames(verrs)
	assert.Contains(t, names, "candidates[0].resume_score")
	assert.Contains(t, names, "candidates[0].ref")
}

func TestValidateStartQuizRequest(t *testing.T) {
	v := NewValidator()

	err := v.ValidateStartQuizRequest(&dto.StartQuizRequest{Role: "Backend Developer", Difficulty: "Medium"})
	assert.NoError(t, err)

	err = v.ValidateStartQuizRequest(&dto.StartQuizRequest{})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, fieldNames(verrs), "role")

	err = v.ValidateStartQuizRequest(&dto.StartQuizRequest{Role: "x", Difficulty: "Impossible"})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, fieldNames(verrs), "difficulty")

	err = v.ValidateStartQuizRequest(&dto.StartQuizRequest{Role: "x", RetestOf: "not-a-ulid"})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, fieldNames(verrs), "retest_of")

	err = v.ValidateStartQuizRequest(&dto.StartQuizRequest{Role: "x", RetestOf: "01ARZ3NDEKTSV4RRFFQ69G5FAV"})
	assert.NoError(t, err)
}

func TestValidateRecordAnswerRequest(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateRecordAnswerRequest(&dto.RecordAnswerRequest{QuestionIndex: 0, Option: "A) yes"}))

	err := v.ValidateRecordAnswerRequest(&dto.RecordAnswerRequest{QuestionIndex: -1})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	names := fieldNames(verrs)
	assert.Contains(t, names, "question_index")
	assert.Contains(t, names, "option")
}

func TestValidateAttemptID(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateAttemptID("01ARZ3NDEKTSV4RRFFQ69G5FAV"))
	assert.Error(t, v.ValidateAttemptID(""))
	assert.Error(t, v.ValidateAttemptID("zzz"))
}
