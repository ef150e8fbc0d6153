package text

import (
	"strings"
	"sync"
	"testing"
)

func checkCoverage(t *testing.T, input string, tokens []Token) {
	t.Helper()
	var b strings.Builder
	end := 0
	for _, token := range tokens {
		if token.ByteStart != end {
			t.Fatalf("token %q starts at %d, previous token ended at %d", token.Word, token.ByteStart, end)
		}
		b.WriteString(input[token.ByteStart:token.ByteEnd])
		end = token.ByteEnd
	}
	if b.String() != input {
		t.Errorf("tokens cover %q, want %q", b.String(), input)
	}
}

func TestUnicodeSegmenter_Tokenize(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantWords []string
		wantKinds []TokenKind
	}{
		{
			name:      "sentence",
			text:      "Hello world.",
			wantWords: []string{"Hello", " ", "world", "."},
			wantKinds: []TokenKind{Word, SoftSeparator, Word, HardSeparator},
		},
		{
			name:      "single word",
			text:      "Hello",
			wantWords: []string{"Hello"},
			wantKinds: []TokenKind{Word},
		},
		{
			name:      "empty",
			text:      "",
			wantWords: nil,
			wantKinds: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := collect(UnicodeSegmenter{}.Tokenize(Unprocessed(tt.text)))
			checkCoverage(t, tt.text, tokens)
			if len(tokens) != len(tt.wantWords) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.text, tokens, tt.wantWords)
			}
			for i, token := range tokens {
				if token.Word != tt.wantWords[i] || token.Kind != tt.wantKinds[i] {
					t.Errorf("token %d = %q %s, want %q %s", i, token.Word, token.Kind, tt.wantWords[i], tt.wantKinds[i])
				}
			}
		})
	}
}

func TestLegacySegmenter_Tokenize(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantWords []string
		wantKinds []TokenKind
	}{
		{
			name:      "separators are merged",
			text:      "quick (\"brown\") fox",
			wantWords: []string{"quick", " (\"", "brown", "\") ", "fox"},
			wantKinds: []TokenKind{Word, HardSeparator, Word, HardSeparator, Word},
		},
		{
			name:      "apostrophe",
			text:      "can't",
			wantWords: []string{"can", "'", "t"},
			wantKinds: []TokenKind{Word, SoftSeparator, Word},
		},
		{
			name:      "decimal number",
			text:      "32.3",
			wantWords: []string{"32", ".", "3"},
			wantKinds: []TokenKind{Word, HardSeparator, Word},
		},
		{
			name:      "cjk characters stand alone",
			text:      "中文abc",
			wantWords: []string{"中", "文", "abc"},
			wantKinds: []TokenKind{Word, Word, Word},
		},
		{
			name:      "accented word",
			text:      "ça marche",
			wantWords: []string{"ça", " ", "marche"},
			wantKinds: []TokenKind{Word, SoftSeparator, Word},
		},
		{
			name:      "empty",
			text:      "",
			wantWords: nil,
			wantKinds: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := collect(LegacySegmenter{}.Tokenize(Unprocessed(tt.text)))
			checkCoverage(t, tt.text, tokens)
			if len(tokens) != len(tt.wantWords) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.text, tokens, tt.wantWords)
			}
			for i, token := range tokens {
				if token.Word != tt.wantWords[i] || token.Kind != tt.wantKinds[i] {
					t.Errorf("token %d = %q %s, want %q %s", i, token.Word, token.Kind, tt.wantWords[i], tt.wantKinds[i])
				}
			}
		})
	}
}

func TestLegacySegmenter_StopsEarly(t *testing.T) {
	var got []string
	for token := range (LegacySegmenter{}).Tokenize(Unprocessed("one two three")) {
		got = append(got, token.Word)
		if len(got) == 2 {
			break
		}
	}
	if len(got) != 2 || got[0] != "one" || got[1] != " " {
		t.Errorf("got %v, want [one, \" \"]", got)
	}
}

var sharedGSETokenizer = sync.OnceValues(func() (*GSETokenizer, error) {
	return NewGSETokenizer(false)
})

func TestNewGSETokenizer(t *testing.T) {
	tokenizer, err := sharedGSETokenizer()
	if err != nil {
		t.Fatalf("NewGSETokenizer() error = %v", err)
	}
	if tokenizer == nil {
		t.Fatal("NewGSETokenizer() returned nil tokenizer")
	}
}

func TestGSETokenizer_Tokenize(t *testing.T) {
	tokenizer, err := sharedGSETokenizer()
	if err != nil {
		t.Fatalf("Failed to create tokenizer: %v", err)
	}

	tests := []struct {
		name  string
		text  string
		check func([]Token) bool
	}{
		{
			name: "Chinese",
			text: "你好世界",
			check: func(tokens []Token) bool {
				return len(tokens) > 0
			},
		},
		{
			name: "Punctuation is a separator",
			text: "人人生而自由。",
			check: func(tokens []Token) bool {
				last := tokens[len(tokens)-1]
				kind, ok := last.IsSeparator()
				return last.Word == "。" && ok && kind == Hard
			},
		},
		{
			name: "Mixed",
			text: "山达尔星联邦共和国Hello world, こんにちは世界。你好世界.",
			check: func(tokens []Token) bool {
				return len(tokens) > 5
			},
		},
		{
			name: "Empty",
			text: "",
			check: func(tokens []Token) bool {
				return len(tokens) == 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := collect(tokenizer.Tokenize(Unprocessed(tt.text)))
			checkCoverage(t, tt.text, tokens)
			if !tt.check(tokens) {
				t.Errorf("Tokenize(%q) = %v, check failed", tt.text, tokens)
			}
		})
	}
}

func BenchmarkGSETokenizer_Tokenize_Chinese(b *testing.B) {
	tokenizer, err := sharedGSETokenizer()
	if err != nil {
		b.Fatalf("Failed to create tokenizer: %v", err)
	}
	text := Unprocessed("山达尔星联邦共和国联邦政府是一个强大的政治实体")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range tokenizer.Tokenize(text) {
		}
	}
}

func BenchmarkLegacySegmenter_Tokenize(b *testing.B) {
	text := Unprocessed(latinSentence)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range (LegacySegmenter{}).Tokenize(text) {
		}
	}
}
