// cmd/motif-scan/main.go
package main

import (
	"isgmotif/internal/appshell"
	"isgmotif/internal/scanapp"
)

func main() {
	appshell.Main(scanapp.RunContext)
}
