package main

import cmd "github.com/rohmanhakim/http-message/internal/cli"

func main() {
	cmd.Execute()
}
