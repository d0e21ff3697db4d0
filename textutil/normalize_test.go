package textutil

import "testing"

func TestNormalizeDescription_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t "} {
		if got := NormalizeDescription(input); got != NoDescription {
			t.Fatalf("NormalizeDescription(%q) = %q, want placeholder", input, got)
		}
	}
}

func TestNormalizeDescription_MarkupOnly(t *testing.T) {
	if got := NormalizeDescription("<div><br/></div>"); got != NoDescription {
		t.Fatalf("markup-only input produced %q, want placeholder", got)
	}
}

func TestNormalizeDescription_Paragraphs(t *testing.T) {
	got := NormalizeDescription("<p>A.</p><p>B.</p>")
	if got != "A.\n\nB." {
		t.Fatalf("expected %q, got %q", "A.\n\nB.", got)
	}
}

func TestNormalizeDescription_SkipsEmptyParagraphs(t *testing.T) {
	got := NormalizeDescription("<p>Первый абзац.</p><p>  </p><p>Второй.</p>")
	if got != "Первый абзац.\n\nВторой." {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeDescription_FlatTextSplitsSentences(t *testing.T) {
	got := NormalizeDescription("Сдам квартиру. Центр города. Звоните")
	want := "Сдам квартиру.\n\nЦентр города.\n\nЗвоните."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNormalizeDescription_StripsTagsInsideParagraphs(t *testing.T) {
	got := NormalizeDescription("<p>Сдам <b>2к</b> квартиру.</p>")
	if got != "Сдам 2к квартиру." {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeDescription_CollapsesSpaces(t *testing.T) {
	got := NormalizeDescription("<p>a  b    c</p>")
	if got != "a b c" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeDescription_Idempotent(t *testing.T) {
	inputs := []string{
		"<p>A.</p><p>B.</p>",
		"Сдам квартиру. Центр города. Звоните",
		"plain text without periods",
		"",
	}
	for _, input := range inputs {
		once := NormalizeDescription(input)
		twice := NormalizeDescription(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q -> %q", input, once, twice)
		}
	}
}
