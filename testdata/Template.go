package testdata

import (
	"bufio"
	"os"
	"strings"
)

// Templates loads route templates from a text file, one template per line.
// Blank lines are skipped.
func Templates(fileName string) []string {
	var templates []string

	for line := range Lines(fileName) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		templates = append(templates, line)
	}

	return templates
}

// Lines is a utility function to easily read every line in a text file.
func Lines(fileName string) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)
		file, err := os.Open(fileName)

		if err != nil {
			return
		}

		defer file.Close()
		scanner := bufio.NewScanner(file)

		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return lines
}
