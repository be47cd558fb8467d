package main

import (
	"log"
	"os"

	"github.com/OhanaFS/transkey/cmd/transkey/cmd"
)

func run() int {
	if err := cmd.NewApp().Run(os.Args); err != nil {
		log.Println(err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
