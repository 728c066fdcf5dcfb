package main

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the run settings that can come from a TOML file. A
// zero-value field defers to the corresponding flag in main.go.
type Config struct {
	Dir       string
	Out       string
	JSON      string
	Reactions string
	Recursive bool
	Verbose   bool
}

func LoadConfig(filename string) Config {
	f, err := os.Open(filename)
	defer f.Close()
	if err != nil {
		panic(err)
	}
	cont, err := io.ReadAll(f)
	if err != nil {
		panic(err)
	}
	// Defaults
	conf := Config{
		Dir: ".",
		Out: "energies.csv",
	}
	err = toml.Unmarshal(cont, &conf)
	if err != nil {
		panic(err)
	}
	return conf
}
