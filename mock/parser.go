package mock

import "github.com/fwojciec/docspan"

var _ docspan.Parser = (*Parser)(nil)

// Parser is a mock implementation of docspan.Parser.
type Parser struct {
	ParseFn func(content string) (*docspan.Document, error)
}

func (p *Parser) Parse(content string) (*docspan.Document, error) {
	return p.ParseFn(content)
}
