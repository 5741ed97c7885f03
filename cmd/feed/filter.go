package main

import (
	"strings"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

func init() {
	algo.Init("default")
}

var slab = util.MakeSlab(100*1024, 2048)

type matchKind int

const (
	matchFuzzy matchKind = iota
	matchExact
	matchPrefix
	matchSuffix
)

type term struct {
	runes         []rune
	kind          matchKind
	negated       bool
	caseSensitive bool
}

// query is an fzf-style filter: space separated terms must all match, and
// " | " separates alternatives. Terms take the usual ', ^, $ and ! markers.
type query []alternative

type alternative []term

func parseQuery(raw string) query {
	var q query
	for _, alt := range strings.Split(strings.TrimSpace(raw), " | ") {
		var terms alternative
		for _, tok := range strings.Fields(alt) {
			terms = append(terms, parseTerm(tok))
		}
		if len(terms) > 0 {
			q = append(q, terms)
		}
	}
	return q
}

func parseTerm(tok string) term {
	t := term{kind: matchFuzzy}
	if len(tok) > 1 && tok[0] == '!' {
		t.negated, tok = true, tok[1:]
	}
	switch {
	case len(tok) > 1 && tok[0] == '\'':
		t.kind, tok = matchExact, tok[1:]
	case len(tok) > 1 && tok[0] == '^':
		t.kind, tok = matchPrefix, tok[1:]
	case len(tok) > 1 && tok[len(tok)-1] == '$':
		t.kind, tok = matchSuffix, tok[:len(tok)-1]
	}

	// smart case
	t.caseSensitive = strings.IndexFunc(tok, unicode.IsUpper) >= 0
	if !t.caseSensitive {
		tok = strings.ToLower(tok)
	}
	t.runes = []rune(tok)
	return t
}

// Match reports whether text satisfies any alternative. The empty query
// matches everything.
func (q query) Match(text string) bool {
	if len(q) == 0 {
		return true
	}
	chars := util.ToChars([]byte(text))
	for _, alt := range q {
		if alt.match(&chars) {
			return true
		}
	}
	return false
}

func (terms alternative) match(chars *util.Chars) bool {
	for _, t := range terms {
		if !t.match(chars) {
			return false
		}
	}
	return true
}

func (t term) match(chars *util.Chars) bool {
	fn := algo.FuzzyMatchV2
	switch t.kind {
	case matchExact:
		fn = algo.ExactMatchNaive
	case matchPrefix:
		fn = algo.PrefixMatch
	case matchSuffix:
		fn = algo.SuffixMatch
	}
	res, _ := fn(t.caseSensitive, false, true, chars, t.runes, false, slab)
	return (res.Start >= 0) != t.negated
}
