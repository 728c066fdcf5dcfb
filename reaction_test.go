package main

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseReaction(t *testing.T) {
	tests := []struct {
		line string
		want Reaction
	}{
		{
			line: "2A + B -> C",
			want: Reaction{
				Terms: []Term{
					{"A", 2, Reactant},
					{"B", 1, Reactant},
					{"C", 1, Product},
				},
				Raw: "2A + B -> C",
			},
		},
		{
			line: "A = B",
			want: Reaction{
				Terms: []Term{
					{"A", 1, Reactant},
					{"B", 1, Product},
				},
				Raw: "A = B",
			},
		},
		{
			line: "  2H2 + O2 -> 2H2O  ",
			want: Reaction{
				Terms: []Term{
					{"H2", 2, Reactant},
					{"O2", 1, Reactant},
					{"H2O", 2, Product},
				},
				Raw: "2H2 + O2 -> 2H2O",
			},
		},
		{
			line: "0.5O2 + co -> co-O",
			want: Reaction{
				Terms: []Term{
					{"O2", 0.5, Reactant},
					{"co", 1, Reactant},
					{"co-O", 1, Product},
				},
				Raw: "0.5O2 + co -> co-O",
			},
		},
	}
	for _, test := range tests {
		got, err := ParseReaction(test.line)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(*got, test.want) {
			t.Errorf("got %v, wanted %v\n", *got, test.want)
		}
	}
}

func TestParseReactionSkip(t *testing.T) {
	for _, line := range []string{"# note", "", "   "} {
		got, err := ParseReaction(line)
		if got != nil || err != nil {
			t.Errorf("got %v, %v, wanted nil, nil\n", got, err)
		}
	}
}

func TestParseReactionMalformed(t *testing.T) {
	tests := []string{
		"A B C",        // no separator
		"A ->",         // empty product side
		"-> B",         // empty reactant side
		"A + -> B",     // empty term
		"2 H2O -> H2O", // space between coefficient and name
		"-2A -> B",     // negative coefficient
		"0A -> B",      // zero coefficient
		"A -> B*",      // bad species token
	}
	for _, line := range tests {
		_, err := ParseReaction(line)
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("%q: got %v, wanted %v\n", line, err, ErrMalformed)
		}
	}
}

func TestReactionEnergy(t *testing.T) {
	energies := map[string]float64{"A": -10.0, "B": -5.0, "C": -16.0}
	r, err := ParseReaction("A + B -> C")
	if err != nil {
		t.Fatal(err)
	}
	got := ReactionEnergy(*r, energies)
	if !got.Resolved {
		t.Fatalf("unresolved: %v\n", got.Unresolved)
	}
	want := -1.0
	if got.Delta != want {
		t.Errorf("got %v, wanted %v\n", got.Delta, want)
	}
}

func TestReactionEnergyUnresolved(t *testing.T) {
	energies := map[string]float64{"A": -10.0}
	r, err := ParseReaction("A + B -> C")
	if err != nil {
		t.Fatal(err)
	}
	got := ReactionEnergy(*r, energies)
	if got.Resolved {
		t.Errorf("got a delta (%v) for an unresolved reaction\n", got.Delta)
	}
	want := []string{"B", "C"}
	if !reflect.DeepEqual(got.Unresolved, want) {
		t.Errorf("got %v, wanted %v\n", got.Unresolved, want)
	}
}

func TestReadReactions(t *testing.T) {
	energies := map[string]float64{"A": -10.0, "B": -5.0, "C": -16.0}
	got, err := ReadReactions("testfiles/reactions.txt", energies)
	if err != nil {
		t.Fatal(err)
	}
	// the comment, the blank line, and the malformed "A B C" line
	// are skipped; the rest are evaluated in file order
	if len(got) != 3 {
		t.Fatalf("got %d results, wanted 3\n", len(got))
	}
	if !got[0].Resolved || got[0].Delta != 9.0 {
		t.Errorf("got %v, wanted resolved delta 9.0\n", got[0])
	}
	if !got[1].Resolved || got[1].Delta != 5.0 {
		t.Errorf("got %v, wanted resolved delta 5.0\n", got[1])
	}
	if got[2].Resolved {
		t.Errorf("got a delta (%v) for an unresolved reaction\n", got[2].Delta)
	}
	want := []string{"D", "E"}
	if !reflect.DeepEqual(got[2].Unresolved, want) {
		t.Errorf("got %v, wanted %v\n", got[2].Unresolved, want)
	}
}
