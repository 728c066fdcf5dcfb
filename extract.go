package main

import (
	"io"
	"os"
	"path/filepath"
)

// Source identifies the VASP output file an energy was taken from.
type Source int

const (
	Oszicar Source = iota
	Outcar
	Vasprun
)

// String returns the file name the source is read from.
func (s Source) String() string {
	switch s {
	case Oszicar:
		return "OSZICAR"
	case Outcar:
		return "OUTCAR"
	case Vasprun:
		return "vasprun.xml"
	}
	return "unknown"
}

// Record holds the energy extracted for one structure. Found is
// false when no output file yielded an energy; such records stay in
// the results so downstream reactions report the species as
// unresolved instead of silently dropping it.
type Record struct {
	Name   string
	Energy float64
	Source Source
	Found  bool
}

// extractor ties one VASP output file to its parser. The table is
// ordered by priority: once a file yields an energy the rest are
// not consulted.
type extractor struct {
	source Source
	parse  func(io.Reader) (float64, error)
}

var extractors = []extractor{
	{Oszicar, ParseOszicar},
	{Outcar, ParseOutcar},
	{Vasprun, ParseVasprun},
}

// ExtractEnergy tries each known output file in dir in priority
// order and returns a Record for the first energy found. When
// nothing works it returns the first parse error, or
// ErrFileNotFound if no output file was present at all.
func ExtractEnergy(dir string) (Record, error) {
	name := filepath.Base(dir)
	var parseErr error
	for _, ex := range extractors {
		path := filepath.Join(dir, ex.source.String())
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		energy, err := ex.parse(f)
		f.Close()
		if err != nil {
			logger.Debug("parse failed", "file", path, "err", err)
			if parseErr == nil {
				parseErr = err
			}
			continue
		}
		logger.Debug("extracted", "file", path, "energy", energy)
		return Record{Name: name, Energy: energy, Source: ex.source, Found: true}, nil
	}
	if parseErr != nil {
		return Record{Name: name}, parseErr
	}
	return Record{Name: name}, ErrFileNotFound
}

// ExtractAll extracts one Record per directory, processing dirs
// strictly in input order. Records are keyed by directory base name;
// when two directories share a name the later one wins and the
// earlier record is replaced, with a warning.
func ExtractAll(dirs []string) ([]Record, map[string]float64) {
	records := make([]Record, 0, len(dirs))
	index := make(map[string]int, len(dirs))
	energies := make(map[string]float64, len(dirs))
	for _, dir := range dirs {
		rec, err := ExtractEnergy(dir)
		if err != nil {
			logger.Warn("no energy found", "dir", dir, "err", err)
		} else {
			logger.Info("energy", "dir", dir, "source", rec.Source.String(),
				"value", rec.Energy)
		}
		if i, ok := index[rec.Name]; ok {
			logger.Warn("duplicate structure name, keeping the newer result",
				"name", rec.Name, "dir", dir)
			records[i] = rec
		} else {
			index[rec.Name] = len(records)
			records = append(records, rec)
		}
		if rec.Found {
			energies[rec.Name] = rec.Energy
		} else {
			delete(energies, rec.Name)
		}
	}
	return records, energies
}
