package tokenizer

import (
	"testing"
)

func TestNFKDDecompose(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"é", "e\u0301"},
		{"ñ", "n\u0303"},
		{"ﬁ", "fi"},
		{"ﬂ", "fl"},
		{"hello", "hello"},
	}

	for _, tt := range tests {
		result := NFKDDecompose(tt.input)
		if result != tt.expected {
			t.Errorf("NFKDDecompose(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestRemoveControlChars(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello\x00world", "helloworld"},
		{"test\x1fstring", "teststring"},
		{"tab\tbed", "tabbed"},
		{"normal", "normal"},
	}

	for _, tt := range tests {
		result := RemoveControlChars(tt.input)
		if result != tt.expected {
			t.Errorf("RemoveControlChars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestLowercase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HELLO", "hello"},
		{"École", "école"},
		{"NAÏVE", "naïve"},
	}

	for _, tt := range tests {
		result := Lowercase(tt.input)
		if result != tt.expected {
			t.Errorf("Lowercase(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestNormalizeQuotes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"“word”", "\"word\""},
		{"«text»", "\"text\""},
		{"‘single’", "'single'"},
		{"cat’s", "cat's"},
		{"‛tis", "'tis"},
	}

	for _, tt := range tests {
		result := NormalizeQuotes(tt.input)
		if result != tt.expected {
			t.Errorf("NormalizeQuotes(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestExpandLigatures(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"æther", "aether"},
		{"Œuvre", "oeuvre"},
		{"Æsthetic", "aesthetic"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		result := ExpandLigatures(tt.input)
		if result != tt.expected {
			t.Errorf("ExpandLigatures(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestRemoveCombiningMarks(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"e\u0301", "e"},
		{"n\u0303", "n"},
		{"i\u0308", "i"},
		{"normal", "normal"},
	}

	for _, tt := range tests {
		result := RemoveCombiningMarks(tt.input)
		if result != tt.expected {
			t.Errorf("RemoveCombiningMarks(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestStemEnglish(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"running", "run"},
		{"generously", "generous"},
		{"cat's", "cat"},
		{"the", "the"},
	}

	for _, tt := range tests {
		result := StemEnglish(tt.input)
		if result != tt.expected {
			t.Errorf("StemEnglish(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestNormalizer_Normalize(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		input    string
		expected string
	}{
		{"RUNNING", "run"},
		{"Café", "cafe"},
		{"Cat’s", "cat"},
		{"ﬁnance", "financ"},
		{"Naïvely", "naiv"},
	}

	for _, tt := range tests {
		result := n.Normalize(tt.input)
		if result != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestNormalizer_LowercaseOnly(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		input    string
		expected string
	}{
		{"CAFÉ", "café"},
		{"CAT’S", "cat’s"},
	}

	for _, tt := range tests {
		result := n.LowercaseOnly(tt.input)
		if result != tt.expected {
			t.Errorf("LowercaseOnly(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestNewNormalizerWithSteps(t *testing.T) {
	n := NewNormalizerWithSteps(Lowercase, NormalizeQuotes)

	result := n.Normalize("Cat’s")
	if result != "cat's" {
		t.Errorf("Custom Normalize(%q) = %q, want %q", "Cat’s", result, "cat's")
	}

	// accents survive without NFKD and mark removal
	result = n.Normalize("Café")
	if result != "café" {
		t.Errorf("Custom Normalize(%q) = %q, want %q", "Café", result, "café")
	}
}

func TestNewNormalizerFromConfig(t *testing.T) {
	if n := NewNormalizerFromConfig(NormalizerConfig{}); n.Len() != 0 {
		t.Errorf("empty config gives %d steps, want 0", n.Len())
	}
	if n := NewNormalizerFromConfig(DefaultNormalizerConfig()); n.Len() != 7 {
		t.Errorf("default config gives %d steps, want 7", n.Len())
	}

	n := NewNormalizerFromConfig(NormalizerConfig{Lowercase: true, StemEnglish: true})
	if got := n.Normalize("Knitting"); got != "knit" {
		t.Errorf("Normalize(Knitting) = %q, want %q", got, "knit")
	}
}
