package main

import "github.com/apexaero/aerosim-service-go/cmd"

func main() {
	cmd.Execute()
}
