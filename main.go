package main

import "pennyquest/cmd"

func main() {
	cmd.Execute()
}
