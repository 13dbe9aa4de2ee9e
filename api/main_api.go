package main

import (
	"github.com/UCDC-Institute/Website_BCMS/api/server"
)

// @title          UCDC Website API
// @version        1.0
// @description    Mutation and auth server for the institute website

// @contact.name  API Support
// @contact.email support@ucdc.co.in

// @host     localhost:8080
// @BasePath /api

// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       Authorization
// @description                BearerJWTToken in Authorization Header

// @accept  json
// @produce json
func main() {
	server.Init()
}
