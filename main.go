package main

import (
	"github.com/deploykit/kitlog/cmd"
	"github.com/deploykit/kitlog/internal/assert"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		assert.Fatal(err)
	}
}
