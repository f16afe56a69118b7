package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/minaorangina/warlog/game"
	"github.com/minaorangina/warlog/protocol"
)

func main() {
	lines, err := readLines()
	if err != nil {
		log.Fatal(err.Error())
	}

	classifier := protocol.DefaultClassifier()
	erroneous := []int{}
	for i, raw := range lines {
		line := classifier.Classify(raw)
		fmt.Printf("%4d [%s] %s\n", i+1, line.Kind(), raw)
		if line.Kind() == protocol.Malformed {
			erroneous = append(erroneous, i+1)
		}
	}

	if len(erroneous) == 0 {
		fmt.Println("All lines are correctly formatted")
	} else {
		fmt.Printf("Erroneous lines: %v\n", erroneous)
	}

	result := game.NewValidator().Validate(lines)
	if result.Err != nil {
		fmt.Printf("Invalid transcript: line %d (%s): %s\n", result.LineNumber, result.State, result.Err.Error())
		os.Exit(1)
	}

	fmt.Println("Transcript describes a valid game")
}

// readLines reads the transcript from the file named by the first argument,
// or from stdin when no argument is given
func readLines() ([]string, error) {
	input := os.Stdin
	if len(os.Args) > 1 {
		file, err := os.Open(os.Args[1])
		if err != nil {
			return nil, err
		}
		defer file.Close()
		input = file
	}

	lines := []string{}
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
