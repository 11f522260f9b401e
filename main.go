package main

import (
	"log"

	"github.com/bimatch/bimatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
