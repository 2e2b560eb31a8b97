package main

import "github.com/mpapenbr/f1stats-go/cmd"

func main() {
	cmd.Execute()
}
