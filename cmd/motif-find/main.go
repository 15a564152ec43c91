// cmd/motif-find/main.go
package main

import (
	"isgmotif/internal/appshell"
	"isgmotif/internal/findapp"
)

func main() {
	appshell.Main(findapp.RunContext)
}
