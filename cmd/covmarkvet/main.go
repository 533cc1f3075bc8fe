// Command covmarkvet reports misuse of covmark marks and guards.
//
//	go vet -vettool=$(which covmarkvet) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"
	"jonwillia.ms/covmark/internal/markcheck"
)

func main() { singlechecker.Main(markcheck.Analyzer) }
