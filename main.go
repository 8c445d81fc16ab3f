package main

import "github.com/koki-develop/glyphart/cmd"

func main() {
	cmd.Execute()
}
