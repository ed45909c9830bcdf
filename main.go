package main

import "nathanbeddoewebdev/njalla/cmd"

func main() {
	cmd.Execute()
}
