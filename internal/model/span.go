package model

type SpanType string

const (
	SpanText      SpanType = "text"
	SpanMention   SpanType = "mention"
	SpanLink      SpanType = "link"
	SpanLinebreak SpanType = "linebreak"
)

// Span is one typed segment of a parsed message body. Spans are derived
// fresh from (raw text, participant snapshot) and never persisted.
// Concatenating the Content of every span, with linebreak spans read as a
// single "\n", reconstructs the original text.
type Span struct {
	Type    SpanType `json:"type"`
	Content string   `json:"content"`

	// Mention fields.
	Nickname string `json:"nickname,omitempty"`
	IsValid  bool   `json:"is_valid,omitempty"`

	// Link field; for "www." links this carries the https:// prefix while
	// Content keeps the text as typed.
	NormalizedURL string `json:"normalized_url,omitempty"`
}
