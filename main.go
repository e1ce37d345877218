package main

import "gocold/cmd"

func main() {
	cmd.Execute()
}
