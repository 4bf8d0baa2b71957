package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/tilewalk/internal/placeholders"
)

func main() {
	dir := flag.String("dir", "assets", "directory to write sprite sheets into")
	flag.Parse()

	fmt.Println("Tilewalk Placeholder Sprite Sheet Generator")
	fmt.Println("===========================================")
	fmt.Println()

	if err := placeholders.GenerateAndSave(*dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Run the game to see your placeholders in action!")
}
