// @title                       Infohub API
// @version                     1.0
// @description                 Contacts, articles and comments behind bearer-token authentication.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"github.com/infohub/infohub-api/internal/cli"

	_ "github.com/infohub/infohub-api/docs"
)

func main() {
	cli.Execute()
}
