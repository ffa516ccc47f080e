package dedupe

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer turns a person's name into a comparison key.
//
// The key keeps only ASCII letters, uppercased, with runs of the same letter
// collapsed and every vowel after the first character removed:
//
//	Abreham -> ABRHM, Birhanie -> BRHN, Bissrat -> BSRT
//
// Keys are not unique; transliterations of the same name are meant to collide.
type Normalizer struct {
	foldDiacritics bool
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithDiacriticFolding maps accented letters to their base letter before
// stripping, so "Abrehám" keys like "Abreham" instead of losing the "a".
func WithDiacriticFolding(enabled bool) NormalizerOption {
	return func(n *Normalizer) {
		n.foldDiacritics = enabled
	}
}

// NewNormalizer creates a Normalizer. With no options it implements the plain
// ASCII rules used by Normalize.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize returns the comparison key for name. Empty or letter-free input
// yields "". The result is a fixed point: Normalize(Normalize(s)) == Normalize(s).
func (n *Normalizer) Normalize(name string) string {
	if n.foldDiacritics {
		name = foldDiacritics(name)
	}

	// Letters only, uppercased, repeats collapsed. Case is folded first so
	// "BiSsrat" collapses the same way as "Bissrat".
	letters := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			continue
		}
		if len(letters) > 0 && letters[len(letters)-1] == c {
			continue
		}
		letters = append(letters, c)
	}
	if len(letters) == 0 {
		return ""
	}

	// Keep the first character as is, drop later vowels. Dropping a vowel can
	// bring two equal consonants together (BEBE -> BB); collapse those too.
	key := make([]byte, 1, len(letters))
	key[0] = letters[0]
	for _, c := range letters[1:] {
		if isVowel(c) || key[len(key)-1] == c {
			continue
		}
		key = append(key, c)
	}
	return string(key)
}

func isVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// foldDiacritics decomposes s and removes combining marks.
// The chain is stateful, so one is built per call.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
