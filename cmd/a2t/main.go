package main

import (
	"github.com/alephdao/transcribe-audio-to-text-extract/cmd/a2t/cmd"
)

func main() {
	cmd.Execute()
}
