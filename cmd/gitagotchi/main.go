package main

import "github.com/marcin-skalski/gitagotchi/internal/cli"

func main() {
	cli.Execute()
}
