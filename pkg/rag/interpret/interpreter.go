package interpret

import (
	"context"
	"fmt"
	"log"

	"guru-ai-be/pkg/llm"
)

// Result is the decoded form of a raw student query.
type Result struct {
	InterpretedQuestion string   `json:"interpreted_question"`
	SearchKeywords      []string `json:"search_keywords"`
}

// Cache memoizes interpretations of identical raw queries.
type Cache interface {
	Get(query string) (*Result, bool)
	Save(query string, result *Result)
}

// Interpreter turns Singlish/mixed-script student input into a clean
// question plus native-script search keywords using the LLM.
type Interpreter struct {
	llmProvider llm.LLMProvider
	retrier     *llm.RetryCaller
	cache       Cache
	logger      *log.Logger
}

func NewInterpreter(llmProvider llm.LLMProvider, retrier *llm.RetryCaller, cache Cache, logger *log.Logger) *Interpreter {
	return &Interpreter{
		llmProvider: llmProvider,
		retrier:     retrier,
		cache:       cache,
		logger:      logger,
	}
}

// Interpret decodes the raw user input for the given subject and medium.
// It returns nil when the model output cannot be parsed or the call fails,
// so callers can fall back to a fixed message.
func (i *Interpreter) Interpret(ctx context.Context, userInput, subject, medium string) *Result {
	cacheKey := fmt.Sprintf("%s|%s|%s", subject, medium, userInput)
	if i.cache != nil {
		if cached, found := i.cache.Get(cacheKey); found {
			i.logger.Printf("[INTERPRET] Cache hit for query")
			return cached
		}
	}

	prompt := i.buildPrompt(userInput, subject, medium)

	raw, ok := i.retrier.Do(ctx, func(ctx context.Context) (string, error) {
		return i.llmProvider.Generate(ctx, prompt, llm.WithJSONOutput())
	})
	if !ok {
		i.logger.Printf("[INTERPRET] LLM call exhausted retries")
		return nil
	}

	result := ParseModelJSON(raw)
	if result == nil {
		i.logger.Printf("[INTERPRET] Could not parse model output: %q", raw)
		return nil
	}

	i.logger.Printf("[INTERPRET] %q -> %q (keywords: %d)",
		userInput, result.InterpretedQuestion, len(result.SearchKeywords))

	if i.cache != nil {
		i.cache.Save(cacheKey, result)
	}
	return result
}

func (i *Interpreter) buildPrompt(userInput, subject, medium string) string {
	return fmt.Sprintf(`ROLE: Transliteration Engine.
INPUT: "%s"
CONTEXT: Subject=%s, Medium=%s
INSTRUCTIONS:
1. Transliterate Singlish to Sinhala phonetically (e.g., "awadi"->"අවධි").
2. Identify intent.
OUTPUT JSON ONLY: { "interpreted_question": "...", "search_keywords": [...] }`,
		userInput, subject, medium)
}
