package main

import "chemcalc/cmd"

func main() {
	cmd.Execute()
}
