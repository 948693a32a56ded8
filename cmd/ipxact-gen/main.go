package main

import "ipxact-gen/internal/cli"

func main() {
	cli.Execute()
}
