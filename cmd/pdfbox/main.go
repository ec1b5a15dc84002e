package main

import "github.com/ElderResearch/go-pdfbox/internal/cli"

func main() {
	cli.Execute()
}
