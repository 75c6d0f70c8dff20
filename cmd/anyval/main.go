package main

import "martianoff/anyval/cmd/anyval/commands"

func main() {
	commands.Execute()
}
