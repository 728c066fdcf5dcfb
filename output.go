package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// NotFoundMark is written in place of an energy when no output file
// in the structure's directory yielded one.
const NotFoundMark = "not found"

// Meta describes one extraction run for the output headers.
type Meta struct {
	Created   time.Time
	Root      string
	Recursive bool
}

// WriteCSV writes the energy table, and the reaction table when
// results is non-empty, as CSV. Structures are sorted by name;
// records without an energy keep their row with an explicit marker.
func WriteCSV(w io.Writer, meta Meta, records []Record, results []Result) error {
	rows := [][]string{
		{"# VASP energy extraction"},
		{"# created:", meta.Created.Format("2006-01-02 15:04:05")},
		{"# root:", meta.Root},
		{"# recursive:", yesNo(meta.Recursive)},
		{},
		{"structure", "energy (eV)", "relative (eV)", "source"},
	}
	rel := RelativeEnergies(records)
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	for _, r := range sorted {
		if !r.Found {
			rows = append(rows, []string{r.Name, NotFoundMark, "", ""})
			continue
		}
		rows = append(rows, []string{
			r.Name,
			fmt.Sprintf("%.6f", r.Energy),
			fmt.Sprintf("%.6f", rel[r.Name]),
			r.Source.String(),
		})
	}
	if len(results) > 0 {
		rows = append(rows,
			[]string{},
			[]string{"# reaction energies"},
			[]string{"reaction", "delta E (eV)"},
		)
		for _, res := range results {
			if res.Resolved {
				rows = append(rows, []string{
					res.Reaction.Raw, fmt.Sprintf("%.6f", res.Delta),
				})
			} else {
				rows = append(rows, []string{
					res.Reaction.Raw,
					"unresolved: " + strings.Join(res.Unresolved, " "),
				})
			}
		}
	}
	cw := csv.NewWriter(w)
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonMeta struct {
	Timestamp string `json:"timestamp"`
	Root      string `json:"root_directory"`
	Recursive bool   `json:"recursive"`
}

type jsonEnergy struct {
	Structure string   `json:"structure"`
	Energy    *float64 `json:"energy"`
	Relative  *float64 `json:"relative,omitempty"`
	Source    string   `json:"source,omitempty"`
}

type jsonReaction struct {
	Reaction   string   `json:"reaction"`
	Delta      *float64 `json:"delta_energy"`
	Unresolved []string `json:"unresolved,omitempty"`
}

type jsonDoc struct {
	Metadata  jsonMeta       `json:"metadata"`
	Energies  []jsonEnergy   `json:"energies"`
	Reactions []jsonReaction `json:"reactions,omitempty"`
}

// WriteJSON writes the same content as WriteCSV in JSON form.
// Missing energies and deltas are null, not omitted.
func WriteJSON(w io.Writer, meta Meta, records []Record, results []Result) error {
	doc := jsonDoc{
		Metadata: jsonMeta{
			Timestamp: meta.Created.Format(time.RFC3339),
			Root:      meta.Root,
			Recursive: meta.Recursive,
		},
		Energies: make([]jsonEnergy, 0, len(records)),
	}
	rel := RelativeEnergies(records)
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	for _, r := range sorted {
		e := jsonEnergy{Structure: r.Name}
		if r.Found {
			energy, relative := r.Energy, rel[r.Name]
			e.Energy = &energy
			e.Relative = &relative
			e.Source = r.Source.String()
		}
		doc.Energies = append(doc.Energies, e)
	}
	for _, res := range results {
		jr := jsonReaction{
			Reaction:   res.Reaction.Raw,
			Unresolved: res.Unresolved,
		}
		if res.Resolved {
			delta := res.Delta
			jr.Delta = &delta
		}
		doc.Reactions = append(doc.Reactions, jr)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
