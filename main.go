package main

import "github.com/josephlewis42/posh/cmd"

func main() {
	cmd.Execute()
}
