package main

import "arcadenexus/cmd/nexus/root"

func main() {
	root.Execute()
}
