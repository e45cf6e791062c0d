package main

import "accverse/internal/app"

// @title           Accverse API
// @version         1.0
// @description     Backend API for the Accverse tax-preparation service.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
