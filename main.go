package main

import "github.com/mouse-blink/autoload/cmd"

func main() {
	cmd.Execute()
}
