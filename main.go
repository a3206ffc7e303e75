package main

import "github.com/julienpequegnot/tagdesk/cmd"

func main() {
	cmd.Execute()
}
