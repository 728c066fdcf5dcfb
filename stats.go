package main

import "gonum.org/v1/gonum/mat"

// RelativeEnergies maps each found structure to its energy above the
// most stable one, in eV. Structures with no extracted energy are
// absent from the result.
func RelativeEnergies(records []Record) map[string]float64 {
	names := make([]string, 0, len(records))
	vals := make([]float64, 0, len(records))
	for _, r := range records {
		if !r.Found {
			continue
		}
		names = append(names, r.Name)
		vals = append(vals, r.Energy)
	}
	if len(vals) == 0 {
		return nil
	}
	v := mat.NewDense(len(vals), 1, vals)
	min := mat.Min(v)
	rel := make(map[string]float64, len(names))
	for i, name := range names {
		rel[name] = v.At(i, 0) - min
	}
	return rel
}
