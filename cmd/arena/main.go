package main

import (
	"github.com/anvitha1105/Capstone-finalreview/internal/cli"
)

func main() {
	cli.Execute()
}
