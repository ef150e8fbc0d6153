package text

// TokenClassifier turns words found in the stop-word set into stop words.
type TokenClassifier struct {
	stopWords *StopWords
}

func NewTokenClassifier(stopWords *StopWords) TokenClassifier {
	return TokenClassifier{stopWords: stopWords}
}

// Classify only looks at Word tokens; separators keep the kind the
// segmenter gave them.
func (c TokenClassifier) Classify(token Token) Token {
	if token.Kind == Word && c.stopWords.Contains(token.Word) {
		token.Kind = StopWord
	}
	return token
}
