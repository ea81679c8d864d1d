package main

import "github.com/terraincognita07/plantcare/internal/cli"

func main() {
	cli.Execute()
}
