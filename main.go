package main

import (
	"os"

	"github.com/lintsarif/lintsarif/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
