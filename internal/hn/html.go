package hn

import (
	"strings"

	"golang.org/x/net/html"
)

// HTMLToText flattens the limited HTML found in HN item text into plain
// text. Paragraph tags become blank lines and entities are decoded.
func HTMLToText(raw string) string {
	if raw == "" {
		return ""
	}
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(raw))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "p":
				if b.Len() > 0 {
					b.WriteString("\n\n")
				}
			case "br":
				b.WriteString("\n")
			case "pre":
				b.WriteString("\n")
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == "pre" {
				b.WriteString("\n")
			}
		}
	}
}
