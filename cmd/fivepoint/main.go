package main

import (
	"github.com/MeKo-Tech/fivepoint/cmd/fivepoint/cmd"
)

func main() {
	cmd.Execute()
}
