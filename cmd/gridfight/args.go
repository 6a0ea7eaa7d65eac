package main

import (
	"fmt"
	"strconv"
	"strings"

	"gridfight/internal/config"
)

// applyArgs reads the positional forms
//
//	height,width[,name[,difficulty]]
//	height width [name [difficulty]]
//
// into s. No arguments leaves s untouched.
func applyArgs(s *config.Session, args []string) error {
	if len(args) == 0 {
		return nil
	}
	parts := args
	if len(args) == 1 {
		if !strings.Contains(args[0], ",") {
			return fmt.Errorf("expected height,width[,name[,difficulty]], got %q", args[0])
		}
		parts = strings.Split(args[0], ",")
	}
	if len(parts) < 2 || len(parts) > 4 {
		return fmt.Errorf("expected height width [name] [difficulty], got %d values", len(parts))
	}

	h, err := atoi("height", parts[0])
	if err != nil {
		return err
	}
	w, err := atoi("width", parts[1])
	if err != nil {
		return err
	}
	s.Height, s.Width = h, w
	if len(parts) >= 3 {
		s.PlayerName = parts[2]
	}
	if len(parts) == 4 {
		d, err := atoi("difficulty", parts[3])
		if err != nil {
			return err
		}
		s.Difficulty = d
	}
	return nil
}

func atoi(field, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a number", field, v)
	}
	return n, nil
}
