package main

import "clipshort/internal/cli"

func main() {
	cli.Main()
}
