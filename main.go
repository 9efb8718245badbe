package main

import (
	"os"

	"github.com/PolarWolf314/gswitch/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
