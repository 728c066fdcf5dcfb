package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Just enough of the vasprun.xml schema to reach the final free
// energy. Field matching stays on direct children, so the scstep
// energies inside a calculation never shadow its closing energy
// block.
type vasprunModeling struct {
	Calculations []vasprunCalculation `xml:"calculation"`
}

type vasprunCalculation struct {
	Energy vasprunEnergy `xml:"energy"`
}

type vasprunEnergy struct {
	Values []vasprunValue `xml:"i"`
}

type vasprunValue struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// ParseVasprun extracts the free energy reported under the last
// <calculation> element of a vasprun.xml document.
func ParseVasprun(r io.Reader) (float64, error) {
	var doc vasprunModeling
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(doc.Calculations) == 0 {
		return 0, ErrEnergyNotFound
	}
	last := doc.Calculations[len(doc.Calculations)-1]
	for _, v := range last.Energy.Values {
		if v.Name != "e_fr_energy" {
			continue
		}
		energy, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: bad e_fr_energy %q", ErrMalformed, v.Value)
		}
		return energy, nil
	}
	return 0, ErrEnergyNotFound
}
