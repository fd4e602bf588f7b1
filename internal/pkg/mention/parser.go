package mention

import (
	"regexp"
	"sort"
	"strings"

	"github.com/s21platform/chat-gateway/internal/model"
)

var (
	mentionRegexp = regexp.MustCompile(`@\S+`)
	linkRegexp    = regexp.MustCompile(`(?:https?://|www\.)\S+`)
)

// Parse tokenizes a message body into typed spans. Each line is processed
// independently; a linebreak span is inserted between consecutive lines.
// Concatenating every span's Content in order reconstructs the input.
//
// Mention validity is resolved against the participant snapshot passed in,
// so callers must re-parse when the roster changes.
func Parse(text string, participants model.ParticipantList) []model.Span {
	lines := strings.Split(text, "\n")
	spans := make([]model.Span, 0, len(lines))

	for i, line := range lines {
		if i > 0 {
			spans = append(spans, model.Span{Type: model.SpanLinebreak, Content: "\n"})
		}
		spans = append(spans, parseLine(line, participants)...)
	}

	return spans
}

type token struct {
	start, end int
	spanType   model.SpanType
}

func parseLine(line string, participants model.ParticipantList) []model.Span {
	tokens := collectTokens(line)
	if len(tokens) == 0 {
		return []model.Span{{Type: model.SpanText, Content: line}}
	}

	spans := make([]model.Span, 0, len(tokens)*2+1)
	lastEnd := 0

	for _, tok := range tokens {
		if tok.start > lastEnd {
			spans = append(spans, model.Span{Type: model.SpanText, Content: line[lastEnd:tok.start]})
		}

		content := line[tok.start:tok.end]
		switch tok.spanType {
		case model.SpanMention:
			nickname := content[1:]
			spans = append(spans, model.Span{
				Type:     model.SpanMention,
				Content:  content,
				Nickname: nickname,
				IsValid:  participants.HasNickname(nickname),
			})
		case model.SpanLink:
			spans = append(spans, model.Span{
				Type:          model.SpanLink,
				Content:       content,
				NormalizedURL: normalizeURL(content),
			})
		}

		lastEnd = tok.end
	}

	if lastEnd < len(line) {
		spans = append(spans, model.Span{Type: model.SpanText, Content: line[lastEnd:]})
	}

	return spans
}

// collectTokens gathers mention and link matches sorted by start offset and
// resolves overlaps first-match-wins: a match starting before the previous
// kept match ends is discarded.
func collectTokens(line string) []token {
	var tokens []token

	for _, m := range mentionRegexp.FindAllStringIndex(line, -1) {
		tokens = append(tokens, token{start: m[0], end: m[1], spanType: model.SpanMention})
	}
	for _, m := range linkRegexp.FindAllStringIndex(line, -1) {
		tokens = append(tokens, token{start: m[0], end: m[1], spanType: model.SpanLink})
	}

	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].start != tokens[j].start {
			return tokens[i].start < tokens[j].start
		}
		return tokens[i].end > tokens[j].end
	})

	kept := tokens[:0]
	lastEnd := -1
	for _, tok := range tokens {
		if tok.start < lastEnd {
			continue
		}
		kept = append(kept, tok)
		lastEnd = tok.end
	}

	return kept
}

// normalizeURL makes a token navigable; displayed content keeps the text as
// typed.
func normalizeURL(content string) string {
	if strings.HasPrefix(content, "www.") {
		return "https://" + content
	}
	return content
}

// ExtractNicknames returns the de-duplicated mentioned nicknames of text in
// first-occurrence order. Used at send time to build the message's mention
// metadata.
func ExtractNicknames(text string) []string {
	matches := mentionRegexp.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	nicknames := make([]string, 0, len(matches))
	for _, m := range matches {
		nickname := m[1:]
		if _, ok := seen[nickname]; ok {
			continue
		}
		seen[nickname] = struct{}{}
		nicknames = append(nicknames, nickname)
	}

	return nicknames
}

// FilterToRoster drops nicknames that do not resolve against the current
// participant roster. Unresolvable mentions are excluded from persisted
// metadata but still render as invalid mentions, since rendering re-parses
// the raw text.
func FilterToRoster(nicknames []string, participants model.ParticipantList) []string {
	var resolved []string
	for _, n := range nicknames {
		if participants.HasNickname(n) {
			resolved = append(resolved, n)
		}
	}
	return resolved
}
