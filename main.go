package main

import "github.com/LovableCodezG/tplan/cmd"

func main() {
	cmd.Execute()
}
