package main

import "github.com/kamusis/recipes-cli/cmd"

func main() {
	cmd.Execute()
}
