package main

import "github.com/mkuran/wordseal/cmd"

func main() {
	cmd.Execute()
}
