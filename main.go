package main

import "github/chapool/mht-transfers/cmd"

func main() {
	cmd.Execute()
}
