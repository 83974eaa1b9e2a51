package main

import "github.com/dbsmedya/csvaudit/cmd/csvaudit/cmd"

func main() {
	cmd.Execute()
}
