package main

import "github.com/jblindsay/whitebox-tools-sub015/cli"

func main() {
	cli.Execute()
}
