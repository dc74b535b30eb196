package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestChunkText_PacksSentences(t *testing.T) {
	chunks := NewTextChunker().ChunkText("One. Two. Three.", 10, 0)
	assert.Equal(t, []string{"One. Two.", "Three."}, chunks)
}

func TestChunkText_Overlap(t *testing.T) {
	chunks := NewTextChunker().ChunkText("One. Two. Three.", 10, 3)
	assert.Equal(t, []string{"One. Two.", "wo. Three."}, chunks)
}

func TestChunkText_SplitsLongSentenceOnWords(t *testing.T) {
	chunks := NewTextChunker().ChunkText("alpha beta gamma delta", 10, 0)
	assert.Equal(t, []string{"alpha beta", "gamma", "delta"}, chunks)
}

func TestChunkText_ShortTextIsOneChunk(t *testing.T) {
	chunks := NewTextChunker().ChunkText("Java developer. Spring Boot.", 1000, 200)
	assert.Equal(t, []string{"Java developer. Spring Boot."}, chunks)
}

func TestChunkText_EmptyText(t *testing.T) {
	assert.Empty(t, NewTextChunker().ChunkText("", 100, 10))
}

func TestChunkText_CoversAllWords(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("Designed distributed systems in Go. Led a team of five! ", 40))
	chunks := NewTextChunker().ChunkText(text, 200, 0)

	assert.Greater(t, len(chunks), 1)
	assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(chunks, " ")))
	for _, chunk := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), 200)
	}
}

func TestChunkText_InvalidOverlapIsClamped(t *testing.T) {
	chunks := NewTextChunker().ChunkText("One. Two. Three.", 10, 50)
	// overlap falls back to maxChunkSize/4
	assert.Equal(t, []string{"One. Two.", "o. Three."}, chunks)
}
