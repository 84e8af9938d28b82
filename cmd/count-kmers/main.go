// cmd/count-kmers/main.go
package main

import (
	"mitocheck/internal/appshell"
	"mitocheck/internal/countapp"
)

func main() { appshell.Main(countapp.RunContext) }
