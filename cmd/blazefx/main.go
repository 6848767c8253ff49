package main

import (
	"github.com/matjam/blazefx/internal/cli"
)

func main() {
	cli.Execute()
}
