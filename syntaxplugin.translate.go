package syntaxplugin

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Translator looks up localized strings. An empty result means the key is missing.
type Translator interface {
	Lookup(key string) string
}

// MapTranslator is a Translator backed by a plain map.
type MapTranslator map[string]string

// Lookup implements Translator
func (m MapTranslator) Lookup(key string) string {
	return m[key]
}

var (
	translationTokenRe  = regexp.MustCompile(translationToken)
	leadingDocCommentRe = regexp.MustCompile(leadingDocComment)
)

// TranslateHTML replaces every @key@ token in html with its localized string.
// Tokens are matched greedily within a line, so "@A@ and @B@" is one token with
// the key "A@ and @B". Tokens whose key does not resolve are left as written.
func TranslateHTML(html string, t Translator) string {
	return translateHTML(html, t, nil)
}

func translateHTML(html string, t Translator, logger *zap.Logger) string {
	if t == nil {
		return html
	}
	locs := translationTokenRe.FindAllStringSubmatchIndex(html, -1)
	if len(locs) == 0 {
		return html
	}

	var sb strings.Builder
	sb.Grow(len(html))
	last := 0
	for _, loc := range locs {
		sb.WriteString(html[last:loc[0]])
		key := html[loc[2]:loc[3]]
		if text := t.Lookup(key); text != "" {
			sb.WriteString(text)
		} else {
			if logger != nil {
				logger.Debug(LogMsgTranslationMissed, zap.String(LogFieldKey, key))
			}
			sb.WriteString(html[loc[0]:loc[1]])
		}
		last = loc[1]
	}
	sb.WriteString(html[last:])
	return sb.String()
}

// StripDocComment removes one HTML comment that opens the template, up to the
// first "-->" and the newline after it. Templates that do not start with a
// comment are returned unchanged.
func StripDocComment(text string) string {
	loc := leadingDocCommentRe.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[loc[1]:]
}
