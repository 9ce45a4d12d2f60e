package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Print the desktop's links",
	Long: `Print every link on the desktop and in the start menu, so they can be
opened in a browser.

Examples:
  desk links
  desk links --config ./desktop.yaml`,
	Run: runLinks,
}

func runLinks(_ *cobra.Command, _ []string) {
	_, desk, err := loadDesktop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	links := desk.Links()
	if len(links) == 0 {
		fmt.Println("No links on this desktop.")
		return
	}

	maxTitle := 5 // "Title" header
	for _, l := range links {
		maxTitle = max(maxTitle, len(l.Title))
	}

	fmt.Printf("  %-*s  %s\n", maxTitle, "Title", "URL")
	fmt.Printf("  %-*s  %s\n", maxTitle, "-----", "---")
	for _, l := range links {
		fmt.Printf("  %-*s  %s\n", maxTitle, l.Title, l.Target)
	}
}
