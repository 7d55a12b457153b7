package main

import "github.com/tapsave/tapsave/cmd"

func main() {
	cmd.Execute()
}
