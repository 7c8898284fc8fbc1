package main

import "github.com/adi-segal/mediafix/cmd"

func main() {
	cmd.Execute()
}
