package main

import (
	"os"

	"github.com/studykeep/studykeep/studykeepservice"
)

func main() {
	if err := studykeepservice.Run(); err != nil {
		os.Exit(1)
	}
}
