package main

import "github.com/medisage/medisage_backend/cmd"

func main() {
	cmd.Execute()
}
