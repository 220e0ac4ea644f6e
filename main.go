package main

import "gitmind/cmd"

func main() {
	cmd.Execute()
}
