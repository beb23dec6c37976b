package domain

// WordPair is one vocabulary entry: a source-language term and its
// target-language translation. Both terms are non-empty and trimmed.
type WordPair struct {
	Source string
	Target string
}

// NewWordPair returns a pair for already-trimmed terms
func NewWordPair(source, target string) WordPair {
	return WordPair{Source: source, Target: target}
}
