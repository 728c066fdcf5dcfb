package main

import "errors"

var (
	ErrFileNotFound   = errors.New("output file not found")
	ErrEnergyNotFound = errors.New("energy not found in output")
	ErrMalformed      = errors.New("malformed input")
)
