package main

import "github.com/majkprpik/kina/cmd"

func main() {
	cmd.Execute()
}
