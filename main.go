package main

import "github.com/jsphweid/eabc2acep/cmd"

func main() {
	cmd.Execute()
}
