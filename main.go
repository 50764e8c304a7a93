package main

import (
	"log"

	"github.com/Muigai-Kiongo/resume-matcher/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
