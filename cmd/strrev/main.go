package main

import "github.com/mel2oo/go-reverse/internal/cli"

func main() {
	cli.Execute()
}
