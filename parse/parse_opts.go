package parse

import "github.com/houzhenggang/rejson/token"

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// MaxDepth bounds container nesting; the default is
// token.DefaultMaxDepth.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		o.maxDepth = n
	}
}

func (o *parseOpts) tokenOpts() []token.TokenOpt {
	var res []token.TokenOpt
	if o.maxDepth > 0 {
		res = append(res, token.MaxDepth(o.maxDepth))
	}
	return res
}
