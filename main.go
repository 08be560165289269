package main

import "github.com/neperme-a11y/brand-reputation-monitor/cmd"

func main() {
	cmd.Execute()
}
