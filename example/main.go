package main

import (
	"log"

	"github.com/alytsin/go-ein"
)

func main() {

	for _, mode := range []ein.ValidationMode{ein.ModeFormat, ein.ModeStrict, ein.ModeStrippedStrict} {
		log.Println(mode, ein.IsValid("12-3456789", mode))
	}

	masked, err := ein.Mask("12-3456789", ein.ModeFormat)
	if err != nil {
		log.Fatalln(err)
	}

	log.Println(masked, ein.CampusesFor("12"))
}
