package main

import "TracePlot/pkg/commands"

func main() {
	commands.Execute()
}
