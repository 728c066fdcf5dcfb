package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TOTEN lines repeat once per electronic/ionic iteration, so the
// last one holds the converged value.
const totenMarker = "free  energy   TOTEN"

// ParseOutcar extracts the total energy from an OUTCAR file, taken
// from the last line of the form
//
//	free  energy   TOTEN  =       -16.82109832 eV
func ParseOutcar(r io.Reader) (energy float64, err error) {
	scanner := bufio.NewScanner(r)
	var line, last string
	for scanner.Scan() {
		line = scanner.Text()
		if strings.Contains(line, totenMarker) {
			last = line
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}
	if last == "" {
		return energy, ErrEnergyNotFound
	}
	fields := strings.Fields(last)
	if len(fields) < 2 {
		return energy, fmt.Errorf("%w: truncated TOTEN line %q", ErrMalformed, last)
	}
	energy, err = strconv.ParseFloat(fields[len(fields)-2], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad TOTEN value in %q", ErrMalformed, last)
	}
	return energy, nil
}
