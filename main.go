package main

import "github.com/twiced-technology-gmbh/todolist/cmd"

func main() {
	cmd.Execute()
}
