package main

import "github.com/alexiusacademia/argoprssm/cmd"

func main() {
	cmd.Execute()
}
