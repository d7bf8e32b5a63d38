package main

import "github.com/user/esg-auditor/cmd"

func main() {
	cmd.Execute()
}
