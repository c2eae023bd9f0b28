package rag

// Bridges for the external engine tests.
const (
	BlankQuestionReply = blankQuestionReply
	SystemPrompt       = systemPrompt
	PreviewRunes       = previewRunes
)
