package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Flags
var (
	dirFlag = flag.String("dir", ".",
		"root directory to scan for VASP calculations")
	outFlag = flag.String("out", "energies.csv",
		"output CSV file")
	jsonFlag = flag.String("json", "",
		"also write the results as JSON to this file")
	reactionsFlag = flag.String("reactions", "",
		"file of reaction equations, one per line")
	recursiveFlag = flag.Bool("r", false,
		"recurse into subdirectories")
	verboseFlag = flag.Bool("v", false,
		"enable debug output")
	configFlag = flag.String("config", "",
		"TOML config file; explicit flags take precedence")
)

var logger = log.New(os.Stderr)

func main() {
	flag.Parse()
	applyConfig()
	if *verboseFlag {
		logger.SetLevel(log.DebugLevel)
	}
	root, err := filepath.Abs(*dirFlag)
	if err != nil {
		logger.Fatal("bad root directory", "dir", *dirFlag, "err", err)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		logger.Fatal("not a directory", "dir", root)
	}
	logger.Info("scanning", "root", root, "recursive", *recursiveFlag)
	dirs, err := FindCalcDirs(root, *recursiveFlag)
	if err != nil {
		logger.Fatal("scan failed", "err", err)
	}
	if len(dirs) == 0 {
		logger.Warn("no VASP calculations found", "root", root)
		return
	}
	logger.Info("found calculation directories", "count", len(dirs))
	records, energies := ExtractAll(dirs)
	var results []Result
	if *reactionsFlag != "" {
		results, err = ReadReactions(*reactionsFlag, energies)
		if err != nil {
			logger.Error("reading reactions", "file", *reactionsFlag, "err", err)
		}
	}
	meta := Meta{Created: time.Now(), Root: root, Recursive: *recursiveFlag}
	writeOutput(*outFlag, meta, records, results, WriteCSV)
	logger.Info("wrote energies", "file", *outFlag)
	if *jsonFlag != "" {
		writeOutput(*jsonFlag, meta, records, results, WriteJSON)
		logger.Info("wrote energies", "file", *jsonFlag)
	}
	logger.Info("done", "directories", len(dirs), "energies", len(energies),
		"reactions", len(results))
}

func writeOutput(path string, meta Meta, records []Record, results []Result,
	write func(w io.Writer, meta Meta, records []Record, results []Result) error) {
	f, err := os.Create(path)
	if err != nil {
		logger.Fatal("creating output", "file", path, "err", err)
	}
	defer f.Close()
	if err := write(f, meta, records, results); err != nil {
		logger.Fatal("writing output", "file", path, "err", err)
	}
}

// applyConfig loads -config and fills in every flag the user left
// unset on the command line.
func applyConfig() {
	if *configFlag == "" {
		return
	}
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	conf := LoadConfig(*configFlag)
	if !set["dir"] && conf.Dir != "" {
		*dirFlag = conf.Dir
	}
	if !set["out"] && conf.Out != "" {
		*outFlag = conf.Out
	}
	if !set["json"] && conf.JSON != "" {
		*jsonFlag = conf.JSON
	}
	if !set["reactions"] && conf.Reactions != "" {
		*reactionsFlag = conf.Reactions
	}
	if !set["r"] && conf.Recursive {
		*recursiveFlag = true
	}
	if !set["v"] && conf.Verbose {
		*verboseFlag = true
	}
}
