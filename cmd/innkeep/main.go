package main

import "github.com/aalvaropc/innkeep/internal/cli"

func main() {
	cli.Execute()
}
