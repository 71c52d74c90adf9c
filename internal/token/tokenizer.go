package token

// Source is a lazy token stream. Once EOF is returned, every further call returns EOF.
type Source interface {
	NextToken() (Token, error)
}

// Tokenize drains a fresh scanner over input and returns every token, EOF included.
func Tokenize(input string) ([]Token, error) {
	s := NewScanner(input)
	var tokens []Token
	for {
		tok, err := s.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
