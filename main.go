package main

import "github.com/tayjaybabee/MIDIDiff/cmd"

func main() {
	cmd.Execute()
}
