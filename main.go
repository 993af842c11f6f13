package main

import (
	"clinic-connect/configuration"
	"clinic-connect/routes"
)

func Init() {
	configuration.ConfigDB()
	configuration.InitRedis()
}

func main() {
	Init()
	r := routes.UserRoutes()
	r.LoadHTMLGlob("templates/*")

	if err := r.Run(); err != nil {
		panic(err)
	}
}
