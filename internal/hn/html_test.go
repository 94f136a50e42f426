package hn

import "testing"

func TestHTMLToTextParagraphsAndEntities(t *testing.T) {
	raw := `I don&#x27;t agree.<p>See <a href="https://example.com" rel="nofollow">https://example.com</a> &amp; <i>more</i>`
	got := HTMLToText(raw)
	want := "I don't agree.\n\nSee https://example.com & more"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestHTMLToTextEmpty(t *testing.T) {
	if got := HTMLToText(""); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestHTMLToTextPreservesCodeBlocks(t *testing.T) {
	raw := `Try:<p><pre><code>  go vet ./...
</code></pre>`
	got := HTMLToText(raw)
	want := "Try:\n\n\n  go vet ./..."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
