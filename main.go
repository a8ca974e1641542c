package main

import "github.com/palazzem/shoshin/cmd"

func main() {
	cmd.Execute()
}
