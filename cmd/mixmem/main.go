package main

import "mixmem/internal/cli"

func main() {
	cli.Execute()
}
