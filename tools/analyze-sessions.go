//go:build ignore

// Analyze-sessions summarizes a mirrormenu log file: how often each preset
// was launched and how the sessions ended.
//
// Usage:
//
//	go run tools/analyze-sessions.go <path-to-mirrormenu.log>
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

type launchFields struct {
	Preset string `json:"preset"`
	Serial string `json:"serial"`
}

type exitFields struct {
	Code    int    `json:"code"`
	Meaning string `json:"meaning"`
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: go run tools/analyze-sessions.go <log-file>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	launches := map[string]int{}
	exits := map[string]int{}
	total := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		// Console-encoded lines end with a JSON field object.
		brace := strings.Index(line, "{")
		if brace < 0 {
			continue
		}
		payload := line[brace:]

		switch {
		case strings.Contains(line, "Launching mirroring process"):
			var lf launchFields
			if json.Unmarshal([]byte(payload), &lf) == nil && lf.Preset != "" {
				launches[lf.Preset]++
				total++
			}
		case strings.Contains(line, "Mirroring process exited"):
			var ef exitFields
			if json.Unmarshal([]byte(payload), &ef) == nil {
				exits[fmt.Sprintf("%d (%s)", ef.Code, ef.Meaning)]++
			}
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error reading log: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sessions: %d\n\n", total)

	fmt.Println("Launches per preset:")
	for _, name := range sortedKeys(launches) {
		fmt.Printf("  %4d  %s\n", launches[name], name)
	}

	fmt.Println()
	fmt.Println("Exit dispositions:")
	for _, key := range sortedKeys(exits) {
		fmt.Printf("  %4d  %s\n", exits[key], key)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
