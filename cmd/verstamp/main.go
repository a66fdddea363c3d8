package main

import (
	"github.com/verstamp/verstamp/cmd/verstamp/cmd"
)

func main() {
	cmd.Execute()
}
