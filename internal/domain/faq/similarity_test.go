package faq

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"abcd", "bcde", 0.75},
		{"hola", "hola", 1.0},
		{"", "", 1.0},
		{"a", "", 0.0},
		{"xyz", "horario de atencion", 0.0},
		{"cual es el horario", "horario de atencion", 14.0 / 37.0},
		{"horario", "horario de atencion", 14.0 / 26.0},
		{"donde queda el colegio", "donde esta el colegio", 38.0 / 43.0},
		{"cuanto cuesta la matricula", "horario de atencion", 10.0 / 45.0},
	}

	for _, tc := range cases {
		if got := Similarity(tc.a, tc.b); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("Similarity(%q, %q): expected %v got %v", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestSimilaritySelfIsOne(t *testing.T) {
	for _, s := range []string{"a", "horario de atencion", "ñandú", "aaaa"} {
		if got := Similarity(s, s); got != 1.0 {
			t.Fatalf("Similarity(%q, %q) = %v", s, s, got)
		}
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"matricula", "horario de atencion"},
		{"cuanto cuesta la matricula", "horario de atencion"},
		{"abcabc", "cbacba"},
		{"same length a", "same length b"},
		{"", "something"},
	}
	for _, p := range pairs {
		ab, ba := Similarity(p[0], p[1]), Similarity(p[1], p[0])
		if ab != ba {
			t.Fatalf("Similarity not symmetric for %q/%q: %v vs %v", p[0], p[1], ab, ba)
		}
		if ab < 0 || ab > 1 {
			t.Fatalf("Similarity out of range for %q/%q: %v", p[0], p[1], ab)
		}
	}
}

func TestSimilarityCountsRunes(t *testing.T) {
	// 'ñ' is two bytes but a single rune.
	if got := Similarity("ña", "ña"); got != 1.0 {
		t.Fatalf("expected 1.0 got %v", got)
	}
	if got := Similarity("ñ", "n"); got != 0.0 {
		t.Fatalf("expected 0.0 got %v", got)
	}
}
