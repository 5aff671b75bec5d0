package main

import (
	"log"

	"github.com/tutils/mrgrand/cmd"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	cmd.Execute()
}
