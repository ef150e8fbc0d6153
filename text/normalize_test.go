package text

import (
	"strings"
	"testing"
)

func normalizeWord(n Normalizer, word string) string {
	return n.Normalize(Token{Kind: Word, Word: word, ByteEnd: len(word)}).Word
}

func TestLowercaseNormalizer_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ascii", input: "Hello World", want: "hello world"},
		{name: "accented", input: "ÉLODIE", want: "élodie"},
		{name: "greek", input: "ΣΟΦΙΑ", want: "σοφια"},
		{name: "han", input: "你好", want: "你好"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeWord(LowercaseNormalizer{}, tt.input); got != tt.want {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransliterateNormalizer_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ascii untouched", input: "Hello", want: "Hello"},
		{name: "combining marks", input: "Élodie", want: "Elodie"},
		{name: "cedilla", input: "ça", want: "ca"},
		{name: "compatibility comma", input: "﹐", want: ","},
		{name: "ligature", input: "ﬁne", want: "fine"},
		{name: "german", input: "Straße", want: "Strasse"},
		{name: "cyrillic", input: "Москва", want: "Moskva"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeWord(TransliterateNormalizer{}, tt.input); got != tt.want {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCJKTransliterateNormalizer_Normalize(t *testing.T) {
	n := NewCJKTransliterateNormalizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "han kept", input: "人人", want: "人人"},
		{name: "ideographic full stop kept", input: "。", want: "。"},
		{name: "kana kept", input: "こんにちは", want: "こんにちは"},
		{name: "latin transliterated", input: "café", want: "cafe"},
		{name: "small comma folded", input: "﹐", want: ","},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeWord(n, tt.input); got != tt.want {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizers_Order(t *testing.T) {
	upper := Normalizers{LowercaseNormalizer{}, kindChangingNormalizer{}}
	if got := normalizeWord(upper, "Hello"); got != "HELLO" {
		t.Errorf("Normalize() = %v, want HELLO", got)
	}
	lower := Normalizers{kindChangingNormalizer{}, LowercaseNormalizer{}}
	if got := normalizeWord(lower, "Hello"); got != "hello" {
		t.Errorf("Normalize() = %v, want hello", got)
	}
	if got := normalizeWord(Normalizers{}, "Hello"); got != "Hello" {
		t.Errorf("empty Normalizers changed the word: %v", got)
	}
}

func TestIdentityNormalizer_Normalize(t *testing.T) {
	token := Token{Kind: SoftSeparator, Word: " ", ByteStart: 3, ByteEnd: 4}
	if got := (IdentityNormalizer{}).Normalize(token); got != token {
		t.Errorf("Normalize() = %v, want %v", got, token)
	}
}

func TestNewCJKNormalizer(t *testing.T) {
	tests := []struct {
		name   string
		useT2s bool
	}{
		{name: "nfkc only", useT2s: false},
		{name: "t2s", useT2s: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewCJKNormalizer(tt.useT2s)
			if err != nil {
				t.Fatalf("NewCJKNormalizer() error = %v", err)
			}
			if n == nil {
				t.Errorf("NewCJKNormalizer() returned nil normalizer")
			}
		})
	}
}

func TestCJKNormalizer_Normalize(t *testing.T) {
	nfkc, err := NewCJKNormalizer(false)
	if err != nil {
		t.Fatalf("NewCJKNormalizer() error = %v", err)
	}
	t2s, err := NewCJKNormalizer(true)
	if err != nil {
		t.Fatalf("NewCJKNormalizer() error = %v", err)
	}

	tests := []struct {
		name       string
		normalizer *CJKNormalizer
		input      string
		want       string
	}{
		{name: "full width to half width", normalizer: nfkc, input: "Ｈｅｌｌｏ", want: "hello"},
		{name: "compatibility letter", normalizer: nfkc, input: "ℌ", want: "h"},
		{name: "han unchanged", normalizer: nfkc, input: "你好世界", want: "你好世界"},
		{name: "kana unchanged", normalizer: nfkc, input: "こんにちは", want: "こんにちは"},
		{name: "traditional kept without t2s", normalizer: nfkc, input: "繁體", want: "繁體"},
		{name: "empty", normalizer: nfkc, input: "", want: ""},
		{name: "traditional to simplified", normalizer: t2s, input: "繁體中文", want: "繁体中文"},
		{name: "simplified unchanged", normalizer: t2s, input: "简体中文", want: "简体中文"},
		{name: "mixed text", normalizer: t2s, input: "Hello 繁體", want: "hello 繁体"},
		{name: "full width with t2s", normalizer: t2s, input: "Ｈｅｌｌｏ", want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeWord(tt.normalizer, tt.input); got != tt.want {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStemNormalizer_Normalize(t *testing.T) {
	n := NewEnglishStemNormalizer()

	tests := []struct {
		name  string
		token Token
		want  string
	}{
		{name: "gerund", token: Token{Kind: Word, Word: "running"}, want: "run"},
		{name: "plural", token: Token{Kind: Word, Word: "jumps"}, want: "jump"},
		{name: "stop word kept", token: Token{Kind: Word, Word: "the"}, want: "the"},
		{name: "separator kept", token: Token{Kind: SoftSeparator, Word: " "}, want: " "},
		{name: "unknown language", token: Token{Kind: Word, Word: "running"}, want: "running"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalizer := n
			if tt.name == "unknown language" {
				normalizer = StemNormalizer{Language: "klingon"}
			}
			if got := normalizer.Normalize(tt.token).Word; got != tt.want {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

type countingNormalizer struct {
	calls *int
}

func (n countingNormalizer) Normalize(token Token) Token {
	*n.calls++
	token.Word = strings.ToUpper(token.Word)
	return token
}

func TestCachedNormalizer_Normalize(t *testing.T) {
	calls := 0
	n, err := NewCachedNormalizer(countingNormalizer{calls: &calls}, 2)
	if err != nil {
		t.Fatalf("NewCachedNormalizer() error = %v", err)
	}

	first := n.Normalize(Token{Kind: Word, Word: "fox", ByteStart: 0, ByteEnd: 3})
	second := n.Normalize(Token{Kind: Word, Word: "fox", ByteStart: 10, ByteEnd: 13})
	if first.Word != "FOX" || second.Word != "FOX" {
		t.Errorf("Normalize() = %v, %v, want FOX", first.Word, second.Word)
	}
	if second.ByteStart != 10 || second.ByteEnd != 13 {
		t.Errorf("cached result moved offsets: %v", second)
	}
	if calls != 1 {
		t.Errorf("inner normalizer called %d times, want 1", calls)
	}

	n.Normalize(Token{Kind: StopWord, Word: "fox"})
	if calls != 2 {
		t.Errorf("kind is not part of the cache key, calls = %d", calls)
	}
	if n.Len() != 2 {
		t.Errorf("Len() = %d, want 2", n.Len())
	}

	if _, err := NewCachedNormalizer(IdentityNormalizer{}, 0); err == nil {
		t.Error("NewCachedNormalizer(size 0) succeeded, want error")
	}
}

func BenchmarkTransliterateNormalizer_Normalize(b *testing.B) {
	token := Token{Kind: Word, Word: "Élodie"}
	n := TransliterateNormalizer{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n.Normalize(token)
	}
}
