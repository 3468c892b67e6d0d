package main

import "github.com/matt-g-everett/ledtween/cli"

func main() {
	cli.Execute()
}
