package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Side marks which half of the equation a term came from.
type Side int

const (
	Reactant Side = iota
	Product
)

func (s Side) String() string {
	if s == Product {
		return "product"
	}
	return "reactant"
}

// Term is one species of a reaction together with its stoichiometric
// coefficient.
type Term struct {
	Species string
	Coeff   float64
	Side    Side
}

// Reaction is a parsed stoichiometric equation. Terms keeps the
// order of the input line; Raw is the trimmed source text.
type Reaction struct {
	Terms []Term
	Raw   string
}

// termRE matches an optional coefficient followed immediately by a
// species name, so "2H2O" is 2 × H2O. A space between the two, or a
// signed coefficient, does not match and the term is rejected.
var termRE = regexp.MustCompile(`^(\d*\.?\d*)([A-Za-z0-9_.-]+)$`)

func parseTerm(s string, side Side) (Term, error) {
	m := termRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Term{}, fmt.Errorf("%w: bad reaction term %q", ErrMalformed, strings.TrimSpace(s))
	}
	coeff := 1.0
	if m[1] != "" {
		// the coefficient group admits a lone "."; ParseFloat rejects it
		c, err := strconv.ParseFloat(m[1], 64)
		if err != nil || c == 0 {
			return Term{}, fmt.Errorf("%w: bad coefficient in %q", ErrMalformed, strings.TrimSpace(s))
		}
		coeff = c
	}
	return Term{Species: m[2], Coeff: coeff, Side: side}, nil
}

func parseSide(s string, side Side) ([]Term, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty %s side", ErrMalformed, side)
	}
	var terms []Term
	for _, raw := range strings.Split(s, "+") {
		term, err := parseTerm(raw, side)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, nil
}

// ParseReaction parses one line of a reaction file, e.g.
//
//	2H2 + O2 -> 2H2O
//
// with -> or = separating reactants from products. Comment lines
// starting with # and blank lines return nil, nil so callers can
// skip them.
func ParseReaction(line string) (*Reaction, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}
	var lhs, rhs string
	switch {
	case strings.Contains(trimmed, "->"):
		parts := strings.SplitN(trimmed, "->", 2)
		lhs, rhs = parts[0], parts[1]
	case strings.Contains(trimmed, "="):
		parts := strings.SplitN(trimmed, "=", 2)
		lhs, rhs = parts[0], parts[1]
	default:
		return nil, fmt.Errorf("%w: no -> or = separator in %q", ErrMalformed, trimmed)
	}
	reactants, err := parseSide(lhs, Reactant)
	if err != nil {
		return nil, err
	}
	products, err := parseSide(rhs, Product)
	if err != nil {
		return nil, err
	}
	return &Reaction{
		Terms: append(reactants, products...),
		Raw:   trimmed,
	}, nil
}

// Result is the outcome of evaluating one reaction against the
// extracted energies. Delta is meaningful only when Resolved is
// true: a single missing species leaves the whole reaction
// unresolved rather than producing a partial number.
type Result struct {
	Reaction   Reaction
	Delta      float64
	Resolved   bool
	Unresolved []string
}

// ReactionEnergy computes ΔE = Σ coeff·E(product) − Σ coeff·E(reactant)
// for r against energies. Species missing from the map are collected
// in Unresolved, sorted and deduplicated.
func ReactionEnergy(r Reaction, energies map[string]float64) Result {
	res := Result{Reaction: r}
	seen := make(map[string]bool)
	var delta float64
	for _, t := range r.Terms {
		e, ok := energies[t.Species]
		if !ok {
			if !seen[t.Species] {
				seen[t.Species] = true
				res.Unresolved = append(res.Unresolved, t.Species)
			}
			continue
		}
		if t.Side == Product {
			delta += t.Coeff * e
		} else {
			delta -= t.Coeff * e
		}
	}
	if len(res.Unresolved) > 0 {
		sort.Strings(res.Unresolved)
		return res
	}
	res.Delta = delta
	res.Resolved = true
	return res
}

// ReadReactions evaluates every reaction in the file at path against
// energies, in file order. Malformed lines are logged and skipped;
// they never abort the batch.
func ReadReactions(path string, energies map[string]float64) ([]Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileNotFound, err)
	}
	defer f.Close()
	var results []Result
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		r, err := ParseReaction(scanner.Text())
		if err != nil {
			logger.Warn("skipping reaction line", "err", err)
			continue
		}
		if r == nil {
			continue
		}
		res := ReactionEnergy(*r, energies)
		if res.Resolved {
			logger.Info("reaction energy", "reaction", r.Raw, "delta", res.Delta)
		} else {
			logger.Warn("unresolved species in reaction", "reaction", r.Raw,
				"missing", strings.Join(res.Unresolved, " "))
		}
		results = append(results, res)
	}
	return results, scanner.Err()
}
