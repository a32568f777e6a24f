package main

import "github.com/roomgate/roomgate/cmd/server"

func main() {
	server.NewServer().Run()
}
