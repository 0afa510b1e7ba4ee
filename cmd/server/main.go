package main

import "github.com/eslsoft/toeicprep/cmd"

func main() {
	cmd.Execute()
}
