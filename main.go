package main

import "github.com/voxelforge/tsmodelgen/cmd"

func main() {
	cmd.Execute()
}
