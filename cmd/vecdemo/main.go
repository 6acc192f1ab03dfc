// Copyright (c) 2025 Visvasity LLC

// Command vecdemo exercises a vector of 4-byte integers and dumps its
// contents.
package main

import (
	"log"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("vecdemo: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
