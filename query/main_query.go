package main

import (
	"github.com/UCDC-Institute/Website_BCMS/query/server"
)

// @title          UCDC Website Query API
// @version        1.0
// @description    Read server for the institute website

// @contact.name  API Support
// @contact.email support@ucdc.co.in

// @host     localhost:8081
// @BasePath /api

// @accept  json
// @produce json
func main() {
	server.Init()
}
