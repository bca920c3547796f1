package main

import "github.com/formertriton/animal-guesser/internal/cli"

func main() {
	cli.Execute()
}
