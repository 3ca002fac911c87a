package response

import (
	"context"
	"fmt"
	"log"
	"strings"

	"guru-ai-be/pkg/llm"
)

// Generator creates grounded answers from retrieved passages
type Generator struct {
	llmProvider llm.LLMProvider
	retrier     *llm.RetryCaller
	logger      *log.Logger
}

// NewGenerator creates a new response generator
func NewGenerator(llmProvider llm.LLMProvider, retrier *llm.RetryCaller, logger *log.Logger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		retrier:     retrier,
		logger:      logger,
	}
}

// Generate creates an answer using ONLY the retrieved passages. When no
// passages are available the model is never called; the student gets the
// fixed no-notes message instead. A generation failure after retries
// degrades to the busy message.
func (g *Generator) Generate(ctx context.Context, passages []string, question, subject, medium string) string {
	if len(passages) == 0 {
		g.logger.Printf("[GENERATION] No context, skipping model call")
		return NoNotesMessage(question, medium)
	}

	promptText := g.buildGroundedPrompt(passages, question, subject, medium)

	answer, ok := g.retrier.Do(ctx, func(ctx context.Context) (string, error) {
		return g.llmProvider.Generate(ctx, promptText)
	})
	if !ok {
		g.logger.Printf("[GENERATION] Model unavailable after retries")
		return BusyMessage(medium)
	}

	g.logger.Printf("[GENERATION] Answer generated from %d passages", len(passages))
	return answer
}

func (g *Generator) buildGroundedPrompt(passages []string, question, subject, medium string) string {
	contextText := strings.Join(passages, "\n---\n")

	var prompt strings.Builder
	prompt.WriteString("You are an expert Sri Lankan O/L Tutor.\n\n")
	prompt.WriteString("SETTINGS:\n")
	prompt.WriteString(fmt.Sprintf("- Subject: %s\n", subject))
	prompt.WriteString(fmt.Sprintf("- Medium: %s (CRITICAL: Answer in this language)\n\n", medium))
	prompt.WriteString("CONTEXT DATA:\n")
	prompt.WriteString(contextText)
	prompt.WriteString("\n\n")
	prompt.WriteString(fmt.Sprintf("USER QUESTION: %s\n\n", question))
	prompt.WriteString(`INSTRUCTIONS:
1. **Persona**: Be friendly. Explain clearly like a teacher.
2. **Handling "CONCEPTS"**:
   - Define first.
   - Break down into Pillars/Components using Bullet Points.
   - Conclude.
3. **Handling "LISTS"**: Preserve exact order from text.
4. **Images**: If you see Figure IDs (e.g., 4.5) in the context, refer to them (e.g., "See Figure 4.5").
5. **Language**:
   - If Medium=English -> English ONLY.
   - If Medium=Sinhala -> Sinhala ONLY.`)

	return prompt.String()
}
