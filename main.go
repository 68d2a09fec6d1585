package main

import "github.com/phoenixwrites/phoenix/cli"

func main() {
	cli.Execute()
}
