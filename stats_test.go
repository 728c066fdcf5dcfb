package main

import (
	"reflect"
	"testing"
)

func TestRelativeEnergies(t *testing.T) {
	records := []Record{
		{Name: "a", Energy: -10.0, Source: Oszicar, Found: true},
		{Name: "b", Energy: -7.5, Source: Outcar, Found: true},
		{Name: "c"},
	}
	got := RelativeEnergies(records)
	want := map[string]float64{"a": 0.0, "b": 2.5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestRelativeEnergiesEmpty(t *testing.T) {
	got := RelativeEnergies([]Record{{Name: "c"}})
	if got != nil {
		t.Errorf("got %v, wanted nil\n", got)
	}
}
