package main

import "github.com/miot-home/micam/cmd"

func main() {
	cmd.Execute()
}
