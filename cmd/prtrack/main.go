package main

import "prtrack/internal/cli"

func main() {
	cli.Execute()
}
