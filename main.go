package main

import "github.com/askwell/apiserver/cmd"

func main() {
	cmd.Execute()
}
