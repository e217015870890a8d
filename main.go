package main

import "limeal.fr/rsplaunch/cmd"

func main() {
	cmd.Execute()
}
