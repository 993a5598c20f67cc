package main

import "github.com/Egor213/LogStream/internal/app"

func main() {
	app.Run()
}
