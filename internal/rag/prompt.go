package rag

import (
	"fmt"
	"strings"

	"docuchat-ai/internal/index"
)

const systemPrompt = "Eres un asistente experto que responde preguntas basándose únicamente en los documentos proporcionados."

const blankQuestionReply = "Por favor, haz una pregunta específica sobre tus documentos."

const promptTemplate = `CONTEXTO DE LOS DOCUMENTOS:
%s

PREGUNTA DEL USUARIO: %s

INSTRUCCIONES IMPORTANTES:
1. Responde ÚNICAMENTE basándote en la información del contexto proporcionado
2. Si la información no está en el contexto, indica claramente: "No encuentro esa información en los documentos proporcionados"
3. Sé preciso, claro y conciso
4. Responde en el mismo idioma en que está formulada la pregunta
5. Si hay múltiples respuestas posibles, menciona todas las relevantes

RESPUESTA:`

// buildPrompt assembles the grounded user prompt from the retrieved chunks.
// With no chunks the context block is empty and the instructions steer the
// model toward the no-information reply.
func buildPrompt(question string, chunks []index.ScoredChunk) string {
	texts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		texts = append(texts, chunk.Text)
	}

	return fmt.Sprintf(promptTemplate, strings.Join(texts, "\n\n"), question)
}
