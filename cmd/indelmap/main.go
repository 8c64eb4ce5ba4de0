// cmd/indelmap/main.go
package main

import (
	"indelmap/internal/app"
	"indelmap/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
