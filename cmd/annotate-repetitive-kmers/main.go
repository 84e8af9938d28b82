// cmd/annotate-repetitive-kmers/main.go
package main

import (
	"mitocheck/internal/annotateapp"
	"mitocheck/internal/appshell"
)

func main() { appshell.Main(annotateapp.RunContext) }
