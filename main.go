package main

import (
	"github.com/sjzsdu/kun/cmd"
)

func main() {
	cmd.Execute()
}
