package textutil

import "testing"

func TestTrimSentence_ShortInputUnchanged(t *testing.T) {
	if got := TrimSentence("Короткий текст.", 780); got != "Короткий текст." {
		t.Fatalf("got %q", got)
	}
}

func TestTrimSentence_CutsAtLastPeriod(t *testing.T) {
	got := TrimSentence("Hello. World. Extra text here.", 13)
	if got != "Hello. World." {
		t.Fatalf("expected %q, got %q", "Hello. World.", got)
	}
}

func TestTrimSentence_HardTruncateAppendsPeriod(t *testing.T) {
	got := TrimSentence("NoPeriodsAtAllHere", 10)
	if got != "NoPeriods." {
		t.Fatalf("expected %q, got %q", "NoPeriods.", got)
	}
}

func TestTrimSentence_CountsRunesNotBytes(t *testing.T) {
	// 12 Cyrillic runes, 24 bytes: must not be touched with max 12.
	s := "Сдамквартиру"
	if got := TrimSentence(s, 12); got != s {
		t.Fatalf("rune-length input was trimmed: %q", got)
	}
}

func TestTrimSentence_AlwaysEndsWithPeriod(t *testing.T) {
	inputs := []string{
		"Hello. World. Extra text here.",
		"NoPeriodsAtAllHere",
		"Сдам квартиру в центре города без посредников",
		"a b c d e f g h i j k l m n",
	}
	for _, s := range inputs {
		for _, max := range []int{5, 10, 20} {
			got := TrimSentence(s, max)
			if got == "" || got[len(got)-1] != '.' {
				t.Fatalf("TrimSentence(%q, %d) = %q does not end with period", s, max, got)
			}
			if n := len([]rune(got)); n > max+1 {
				t.Fatalf("TrimSentence(%q, %d) = %q exceeds limit (%d runes)", s, max, got, n)
			}
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("привет мир", 6); got != "привет" {
		t.Fatalf("got %q", got)
	}
	if got := TruncateRunes("short", 100); got != "short" {
		t.Fatalf("got %q", got)
	}
}
