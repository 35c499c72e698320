package scenario

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/zyedidia/generic/hashmap"
)

// Builder constructs a typed fact from a predicate's comma-split argument
// list.
type Builder func(args []string) (interface{}, error)

func stringEq(a, b string) bool { return a == b }

func stringHash(s string) uint64 {
	h := uint64(14695981039346656037)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}

// Registry parses a scenario's textual "facts" lines, like "Upto(100)" or
// "Le(X, Y)", into typed facts. It uses a single Aho-Corasick automaton
// (github.com/cloudflare/ahocorasick) to recognise, in one pass, which
// known predicate keyword a line starts with, before a small per-predicate
// parser splits out its arguments. This scales well: one automaton build,
// many single-pass lookups, rather than trying every predicate's parser
// against every line. The keyword -> Builder lookup uses a generic
// hashmap.Map (hashmap.New(size, eqFunc, hashFunc)) rather than a bare
// Go map.
type Registry struct {
	keywords []string
	matcher  *ahocorasick.Matcher
	builders *hashmap.Map[string, Builder]
}

// NewRegistry builds a Registry from a predicate-name -> constructor map.
// The constructor receives the comma-split, trimmed argument list between
// the predicate's parentheses.
func NewRegistry(builders map[string]Builder) *Registry {
	keywords := make([]string, 0, len(builders))
	m := hashmap.New[string, Builder](uint64(len(builders)), stringEq, stringHash)
	for k, b := range builders {
		keywords = append(keywords, k)
		m.Put(k, b)
	}
	sort.Strings(keywords)
	return &Registry{
		keywords: keywords,
		matcher:  ahocorasick.NewStringMatcher(keywords),
		builders: m,
	}
}

// Parse recognises the predicate keyword in line and invokes its builder
// with the parenthesised argument list. It returns an error if no known
// predicate matches, or if the matched predicate's argument list is
// malformed (unbalanced parentheses).
func (r *Registry) Parse(line string) (interface{}, error) {
	hits := r.matcher.Match([]byte(line))
	trimmed := strings.TrimSpace(line)
	// Only keywords the line starts with count. Prefer the longest one, so
	// e.g. "Upto" can't shadow a hypothetical "UptoStrict" sharing its prefix.
	name := ""
	for _, h := range hits {
		if kw := r.keywords[h]; strings.HasPrefix(trimmed, kw) && len(kw) > len(name) {
			name = kw
		}
	}
	if name == "" {
		return nil, fmt.Errorf("scenario: no known predicate in %q", line)
	}

	open := strings.IndexByte(line, '(')
	closeParen := strings.LastIndexByte(line, ')')
	var args []string
	if open >= 0 && closeParen > open {
		raw := line[open+1 : closeParen]
		if strings.TrimSpace(raw) != "" {
			for _, a := range strings.Split(raw, ",") {
				args = append(args, strings.TrimSpace(a))
			}
		}
	} else if open >= 0 || closeParen >= 0 {
		return nil, fmt.Errorf("scenario: malformed predicate %q", line)
	}

	build, ok := r.builders.Get(name)
	if !ok {
		return nil, fmt.Errorf("scenario: no builder registered for predicate %q", name)
	}
	return build(args)
}

// ParseAll parses every line in lines, logging each line's error to a
// Context rather than stopping at the first one — the same accumulate-
// don't-bail posture the teacher's rule loader uses when it registers a
// whole file of rule definitions and reports every bad one in one pass.
// Callers check ctx.NumErrors() to decide whether the (necessarily
// incomplete) result slice is usable.
func (r *Registry) ParseAll(lines []string) ([]interface{}, *Context) {
	ctx := NewContext()
	result := make([]interface{}, 0, len(lines))
	for _, line := range lines {
		v, err := r.Parse(line)
		if err != nil {
			ctx.LogError(err)
			continue
		}
		result = append(result, v)
	}
	return result, ctx
}
