package main

import "github.com/harihari1989/machinelearner.github.io-sub000/cmd"

func main() {
	cmd.Execute()
}
