package main

import (
	"github.com/LiamGraham/truthtable/pkg/cmd"
)

func main() {
	cmd.Execute()
}
