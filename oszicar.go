package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ParseOszicar extracts the total energy from an OSZICAR relaxation
// log. Every ionic step ends in a line like
//
//	1 F= -.16815373E+02 E0= -.16815682E+02  d E =-.168154E+02
//
// and the converged energy is the value following F= on the last
// such line.
func ParseOszicar(r io.Reader) (energy float64, err error) {
	scanner := bufio.NewScanner(r)
	var line, last string
	for scanner.Scan() {
		line = scanner.Text()
		if strings.Contains(line, "F=") {
			last = line
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}
	if last == "" {
		return energy, ErrEnergyNotFound
	}
	fields := strings.Fields(strings.SplitN(last, "F=", 2)[1])
	if len(fields) == 0 {
		return energy, ErrEnergyNotFound
	}
	energy, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, ErrEnergyNotFound
	}
	return energy, nil
}
