package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Instance pairs a graph with the minimum cycle length the search must reach.
type Instance struct {
	Graph  Graph
	Target uint64
}

// InstanceFromFile parses an instance file: a "N E K" header followed by E
// edge lines "u v". Blank lines and lines starting with 'c' are skipped.
func InstanceFromFile(path string) (Instance, error) {
	file, err := os.Open(path)
	if err != nil {
		return Instance{}, fmt.Errorf("could not open file: %w", err)
	}
	defer file.Close()

	return InstanceFromReader(file)
}

func InstanceFromReader(reader io.Reader) (Instance, error) {
	scanner := bufio.NewScanner(reader)

	header, err := nextContentLine(scanner)
	if err != nil {
		return Instance{}, fmt.Errorf("missing header line: %v", err)
	}
	fields := strings.Fields(header)
	if len(fields) != 3 {
		return Instance{}, fmt.Errorf("invalid header line: %q", header)
	}
	vertices, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return Instance{}, fmt.Errorf("invalid vertex count: %w", err)
	}
	edgeCount, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return Instance{}, fmt.Errorf("invalid edge count: %w", err)
	}
	target, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return Instance{}, fmt.Errorf("invalid target length: %w", err)
	}

	edges := make([][2]uint64, 0, edgeCount)
	for {
		line, err := nextContentLine(scanner)
		if err == io.EOF {
			break
		} else if err != nil {
			return Instance{}, err
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			return Instance{}, fmt.Errorf("invalid edge line: %q", line)
		}
		u, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return Instance{}, fmt.Errorf("invalid edge endpoint %q: %w", parts[0], err)
		}
		v, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return Instance{}, fmt.Errorf("invalid edge endpoint %q: %w", parts[1], err)
		}
		edges = append(edges, [2]uint64{u, v})
	}
	if uint64(len(edges)) != edgeCount {
		return Instance{}, fmt.Errorf("header declares %v edges but %v were found", edgeCount, len(edges))
	}

	graph, err := NewGraph(vertices, edges)
	if err != nil {
		return Instance{}, err
	}
	return Instance{Graph: graph, Target: target}, nil
}

func nextContentLine(scanner *bufio.Scanner) (string, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip blank lines and comments
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
