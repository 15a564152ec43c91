// cmd/motif-enrich/main.go
package main

import (
	"isgmotif/internal/appshell"
	"isgmotif/internal/enrichapp"
)

func main() {
	appshell.Main(enrichapp.RunContext)
}
