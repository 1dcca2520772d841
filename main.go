package main

import "github.com/kmacinski/gridos/cmd"

func main() {
	cmd.Execute()
}
