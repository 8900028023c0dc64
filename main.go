package main

import (
	"github.com/HossFir/GECKO/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
