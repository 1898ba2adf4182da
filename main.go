package main

import "github.com/rgopan/graha/cmd"

func main() {
	cmd.Execute()
}
