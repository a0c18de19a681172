package main

import "enchantment-tracker/cmd"

func main() {
	cmd.Execute()
}
