package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hireready/internal/domain"
	"hireready/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

const generationTemperature = 0.9

// defaultGenerationTimeout bounds a single LLM call when the config does
// not set one.
const defaultGenerationTimeout = 60 * time.Second

// questionArraySchema is the structural contract a generation response
// must satisfy before any question is accepted.
const questionArraySchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["type", "question", "options", "correctAnswer", "explanation"],
		"properties": {
			"type": {"type": "string", "enum": ["mcq", "snippet"]},
			"question": {"type": "string", "minLength": 1},
			"options": {
				"type": "array",
				"items": {"type": "string", "minLength": 1},
				"minItems": 2
			},
			"correctAnswer": {"type": "string", "minLength": 1},
			"explanation": {"type": "string"}
		}
	}
}`

var compiledSchema = gojsonschema.NewStringLoader(questionArraySchema)

// OpenAIQuizGenerator implements domain.QuestionGenerator against any
// OpenAI-compatible chat completion endpoint.
type OpenAIQuizGenerator struct {
	llm     llms.Model
	timeout time.Duration
}

// NewOpenAIQuizGenerator builds a generator against the given endpoint.
// baseURL may point at any OpenAI-compatible provider. A non-positive
// timeout falls back to the default.
func NewOpenAIQuizGenerator(apiKey, model, baseURL string, timeout time.Duration) (*OpenAIQuizGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("quiz generator API key cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("quiz generator model name cannot be empty")
	}

	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultGenerationTimeout
	}
	return &OpenAIQuizGenerator{llm: llm, timeout: timeout}, nil
}

// NewOpenAIQuizGeneratorWithModel wraps an existing llms.Model. Used by
// tests to inject a fake.
func NewOpenAIQuizGeneratorWithModel(llm llms.Model) *OpenAIQuizGenerator {
	return &OpenAIQuizGenerator{llm: llm, timeout: defaultGenerationTimeout}
}

// GenerateQuestions asks the LLM for a question set and validates the
// response structurally and against the question invariants. A response
// that fails validation is returned as an error; retry policy belongs to
// the caller.
func (g *OpenAIQuizGenerator) GenerateQuestions(ctx context.Context, role string, difficulty domain.Difficulty, count int, strict bool) ([]domain.QuizQuestion, error) {
	prompt := buildPrompt(role, difficulty, count, strict)

	// The generation call is bounded so a stalled provider cannot pin the
	// request; the caller's context still cancels early.
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt,
		llms.WithTemperature(generationTemperature))
	if err != nil {
		return nil, fmt.Errorf("llm call failed: %w", err)
	}

	questions, err := parseQuestions(raw, count)
	if err != nil {
		logger.Get().Warn("quiz generation produced invalid response",
			zap.String("role", role),
			zap.String("difficulty", string(difficulty)),
			zap.Error(err))
		return nil, err
	}
	return questions, nil
}

func buildPrompt(role string, difficulty domain.Difficulty, count int, strict bool) string {
	var guidance string
	switch difficulty {
	case domain.DifficultyLow:
		guidance = fmt.Sprintf(`Generate %d MCQ questions ONLY (no code snippets) suitable for beginners. All questions must have type: "mcq".`, count)
	case domain.DifficultyMedium:
		guidance = fmt.Sprintf(`Generate %d mixed questions of intermediate complexity. Mix regular MCQs (type: "mcq") and code snippet MCQs (type: "snippet"). Include at least 4 code snippet questions.`, count)
	default:
		guidance = fmt.Sprintf(`Generate %d mixed questions with advanced difficulty. Mix regular MCQs (type: "mcq") and code snippet MCQs (type: "snippet"). Include at least 5 code snippet questions with complex problems.`, count)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are an expert interviewer. Generate exactly %d questions for the selected role and difficulty level.

%s

Role: %s
Difficulty: %s

Rules:
- Each question must include: type ("mcq" or "snippet"), question text, 4 options, correctAnswer, and explanation.
- For "snippet" type questions, include code examples in the question text.
- Provide 4 multiple-choice options labeled A, B, C, D.
- correctAnswer must exactly match one of the options.
- explanation should provide clear reasoning for the correct answer.
- Return ONLY valid JSON array of exactly %d objects with this exact shape:
  [
    {
      "type": "mcq" or "snippet",
      "question": "...",
      "options": ["A) ...", "B) ...", "C) ...", "D) ..."],
      "correctAnswer": "A) ...",
      "explanation": "..."
    }
  ]
- No markdown, no extra text, no code blocks - just the JSON array.
`, count, guidance, role, difficulty, count)

	if strict {
		b.WriteString(`
IMPORTANT: Your previous response was rejected because it was not valid JSON or violated the rules above. Respond with NOTHING but the JSON array. Do not wrap it in markdown fences. Double-check that every correctAnswer string is byte-for-byte identical to one of its options.
`)
	}
	return b.String()
}

// parseQuestions extracts, schema-checks, and invariant-checks the JSON
// array embedded in an LLM response.
func parseQuestions(raw string, count int) ([]domain.QuizQuestion, error) {
	cleaned := stripFences(raw)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end < start {
		return nil, domain.NewQuizGenerationFailedError(fmt.Errorf("no JSON array found in response"))
	}
	jsonText := cleaned[start : end+1]

	result, err := gojsonschema.Validate(compiledSchema, gojsonschema.NewStringLoader(jsonText))
	if err != nil {
		return nil, domain.NewQuizGenerationFailedError(fmt.Errorf("response is not valid JSON: %w", err))
	}
	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, domain.NewQuizGenerationFailedError(
			fmt.Errorf("response violates question schema: %s", strings.Join(msgs, "; ")))
	}

	var questions []domain.QuizQuestion
	if err := json.Unmarshal([]byte(jsonText), &questions); err != nil {
		return nil, domain.NewQuizGenerationFailedError(fmt.Errorf("failed to decode questions: %w", err))
	}

	if len(questions) != count {
		return nil, domain.NewQuizGenerationFailedError(
			fmt.Errorf("expected %d questions, got %d", count, len(questions)))
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, domain.NewQuizGenerationFailedError(
				fmt.Errorf("question %d is invalid: %w", i+1, err))
		}
	}
	return questions, nil
}

// stripFences removes a surrounding markdown code fence if the model
// added one despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
