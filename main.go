package main

import "github.com/HaiFongPan/fmgr/cmd"

func main() {
	cmd.Execute()
}
