package main

import (
	"os"

	"github.com/consolehook/consolehook/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
