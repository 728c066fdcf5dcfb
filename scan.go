package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// FindCalcDirs returns the directories under root holding at least
// one VASP output file. Without recursive only the immediate
// children of root are checked; with it the whole tree is walked.
// The result is sorted so repeated runs over the same tree process
// and log in the same order.
func FindCalcDirs(root string, recursive bool) ([]string, error) {
	var dirs []string
	if recursive {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && hasCalcOutput(path) {
				dirs = append(dirs, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			path := filepath.Join(root, e.Name())
			if e.IsDir() && hasCalcOutput(path) {
				dirs = append(dirs, path)
			}
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

func hasCalcOutput(dir string) bool {
	for _, ex := range extractors {
		if _, err := os.Stat(filepath.Join(dir, ex.source.String())); err == nil {
			return true
		}
	}
	return false
}
