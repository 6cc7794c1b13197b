package main

import "github.com/evanshaw/cadence_backend/cmd"

func main() {
	cmd.Execute()
}
