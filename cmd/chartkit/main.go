// chartkit - accessible colours and palettes for charts
//
// chartkit checks WCAG contrast between chart colours, finds accessible
// variants of colours that fall short, and generates categorical, sequential
// and diverging palettes for chart series.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/chartkit/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
