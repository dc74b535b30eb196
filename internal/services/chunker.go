package services

import (
	"strings"
	"unicode/utf8"
)

type TextChunker interface {
	ChunkText(text string, maxChunkSize int, overlap int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// ChunkText implements TextChunker. Resume text arrives whitespace-collapsed,
// so chunks are packed from sentences; a sentence longer than maxChunkSize is
// split on word boundaries. Each chunk after the first starts with the last
// overlap runes of the previous one. Sizes are in runes.
func (tc *textChunker) ChunkText(text string, maxChunkSize int, overlap int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = 1000
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= maxChunkSize {
		overlap = maxChunkSize / 4
	}

	var chunks []string
	var current strings.Builder
	currentLen := 0
	pending := false

	flush := func() {
		chunks = append(chunks, current.String())
		current.Reset()
		currentLen = 0
		pending = false

		if overlap > 0 {
			tail := getLastNChars(chunks[len(chunks)-1], overlap)
			current.WriteString(tail)
			currentLen = utf8.RuneCountInString(tail)
		}
	}

	add := func(piece string) {
		pieceLen := utf8.RuneCountInString(piece)
		if pending && currentLen+pieceLen+1 > maxChunkSize {
			flush()
		}
		if currentLen > 0 {
			current.WriteString(" ")
			currentLen++
		}
		current.WriteString(piece)
		currentLen += pieceLen
		pending = true
	}

	for _, sentence := range splitIntoSentences(text) {
		if utf8.RuneCountInString(sentence) <= maxChunkSize {
			add(sentence)
			continue
		}
		for _, word := range strings.Fields(sentence) {
			add(word)
		}
	}

	// A trailing chunk made only of overlap adds nothing new.
	if pending {
		chunks = append(chunks, current.String())
	}

	return chunks
}

// splitIntoSentences splits after '.', '!' and '?' and keeps the punctuation.
func splitIntoSentences(text string) []string {
	var result []string
	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(text[start : i+1]); s != "" {
				result = append(result, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		result = append(result, s)
	}
	return result
}

func getLastNChars(text string, n int) string {
	if n <= 0 {
		return ""
	}

	runes := []rune(text)
	if len(runes) <= n {
		return text
	}

	return string(runes[len(runes)-n:])
}
