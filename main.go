package main

import (
	"os"
	_ "time/tzdata"

	"ai-news-clipper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
