package main

import "android-provision/internal/cli"

func main() {
	cli.Execute()
}
