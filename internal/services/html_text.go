package services

import (
	"strings"

	"golang.org/x/net/html"
)

// stripHTML returns the visible text of an HTML fragment with whitespace collapsed.
// Script and style contents are dropped and entities are decoded.
func stripHTML(fragment string) string {
	if fragment == "" {
		return ""
	}

	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	raw := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.StartTagToken:
			name, _ := z.TagName()
			raw = isRawTextTag(name)
			b.WriteByte(' ')
		case html.EndTagToken:
			raw = false
			b.WriteByte(' ')
		case html.SelfClosingTagToken:
			b.WriteByte(' ')
		case html.TextToken:
			if !raw {
				b.Write(z.Text())
			}
		}
	}
}

// htmlTitle returns the text of the first <title> element, at most 200 characters
func htmlTitle(document string) string {
	z := html.NewTokenizer(strings.NewReader(document))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := z.TagName()
			if string(name) != "title" {
				continue
			}
			if z.Next() != html.TextToken {
				return ""
			}
			return truncateRunesPlain(stripHTML(string(z.Text())), 200)
		}
	}
}

func isRawTextTag(name []byte) bool {
	tag := string(name)
	return tag == "script" || tag == "style"
}

func truncateRunesPlain(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
