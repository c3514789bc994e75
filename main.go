package main

import "github.com/homeledger/homeledger/cmd"

func main() {
	cmd.Execute()
}
