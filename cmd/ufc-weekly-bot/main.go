package main

import "github.com/mkrogh/ufc-weekly-bot/internal/cli"

func main() {
	cli.Execute()
}
