package main

import "shadowquest/cmd/sq/root"

func main() {
	root.Execute()
}
