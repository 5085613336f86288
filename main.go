package main

import "github.com/samuelfneumann/gotabular/examples"

func main() {
	examples.Gridworld()
}
