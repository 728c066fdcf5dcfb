package main

import (
	"reflect"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	got := LoadConfig("testfiles/test.in")
	want := Config{
		Dir:       "calcs",
		Out:       "out.csv",
		JSON:      "out.json",
		Reactions: "reactions.txt",
		Recursive: true,
		Verbose:   true,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}
