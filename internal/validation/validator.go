package validation

import (
	"fmt"
	"strings"

	"hireready/internal/domain"
	"hireready/internal/dto"

	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
)

// Validator checks incoming request DTOs before they reach the services.
// Struct tags cover presence and range checks; anything the tags cannot
// express is checked by hand.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *Validator) ValidateEvaluateRequest(req *dto.EvaluateRequest) error {
	if errs := v.structErrors(req); len(errs) > 0 {
		return errs
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("resume_text")}
	}
	return nil
}

func (v *Validator) ValidateMatchRequest(req *dto.MatchRequest) error {
	errs := v.structErrors(req)
	for i, cand := range req.Candidates {
		if strings.TrimSpace(cand.Ref) == "" {
			errs = append(errs, domain.NewMissingFieldError(fmt.Sprintf("candidates[%d].ref", i)))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (v *Validator) ValidateStartQuizRequest(req *dto.StartQuizRequest) error {
	errs := v.structErrors(req)
	if req.Difficulty != "" && !isKnownDifficulty(req.Difficulty) {
		errs = append(errs, domain.NewInvalidFormatError("difficulty", req.Difficulty))
	}
	if req.RetestOf != "" && !isValidULID(req.RetestOf) {
		errs = append(errs, domain.NewInvalidFormatError("retest_of", req.RetestOf))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (v *Validator) ValidateRecordAnswerRequest(req *dto.RecordAnswerRequest) error {
	var errs domain.ValidationErrors
	if req.QuestionIndex < 0 {
		errs = append(errs, domain.NewOutOfRangeError("question_index", req.QuestionIndex, 0, domain.QuestionsPerQuiz-1))
	}
	if req.Option == "" {
		errs = append(errs, domain.NewMissingFieldError("option"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (v *Validator) ValidateSubmitQuizRequest(req *dto.SubmitQuizRequest) error {
	var errs domain.ValidationErrors
	for idx := range req.Answers {
		if idx < 0 {
			errs = append(errs, domain.NewOutOfRangeError("answers", idx, 0, domain.QuestionsPerQuiz-1))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (v *Validator) ValidateAttemptID(id string) error {
	if id == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("id")}
	}
	if !isValidULID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("id", id)}
	}
	return nil
}

// structErrors runs tag validation and converts the failures into domain
// validation errors keyed by the JSON field path.
func (v *Validator) structErrors(req any) domain.ValidationErrors {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.ValidationErrors{{Field: "request", Message: err.Error()}}
	}

	var errs domain.ValidationErrors
	for _, fe := range fieldErrs {
		field := jsonFieldPath(fe.Namespace())
		switch fe.Tag() {
		case "required", "min":
			errs = append(errs, domain.NewMissingFieldError(field))
		case "gte", "lte":
			errs = append(errs, domain.ValidationError{
				Field:   field,
				Message: fmt.Sprintf("must be %s %s", fe.Tag(), fe.Param()),
			})
		default:
			errs = append(errs, domain.ValidationError{
				Field:   field,
				Message: fmt.Sprintf("failed %s validation", fe.Tag()),
			})
		}
	}
	return errs
}

// jsonFieldPath turns a validator namespace like
// "MatchRequest.Candidates[1].Ref" into "candidates[1].ref".
func jsonFieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:] // drop the root struct name
	}
	for i, p := range parts {
		parts[i] = toSnake(p)
	}
	return strings.Join(parts, ".")
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isKnownDifficulty(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "easy", "medium", "high", "hard":
		return true
	}
	return false
}

func isValidULID(s string) bool {
	_, err := ulid.Parse(s)
	return err == nil
}
