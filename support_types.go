package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// errReportsFound makes the process exit with status 1 without printing anything more.
var errReportsFound = errors.New("error level reports found")

// location is a FILE:LINE:COL reference, line and column are 1-based.
type location struct {
	file   string
	line   int
	column int
}

func (l location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.file, l.line, l.column)
}

// UnmarshalText for setting values with the command line. The column may be omitted and
// defaults to 1.
func (l *location) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)

	parts := strings.Split(text, ":")
	if len(parts) < 2 {
		return fmt.Errorf("location %q must look like FILE:LINE[:COL]", text)
	}

	nums := parts[len(parts)-1:]
	if len(parts) > 2 {
		if _, err := strconv.Atoi(parts[len(parts)-2]); err == nil {
			nums = parts[len(parts)-2:]
		}
	}
	file := strings.Join(parts[:len(parts)-len(nums)], ":")
	if file == "" {
		return fmt.Errorf("location %q misses the file", text)
	}

	res := location{file: file, column: 1}
	line, err := strconv.Atoi(nums[0])
	if err != nil || line < 1 {
		return fmt.Errorf("location %q has invalid line %q", text, nums[0])
	}
	res.line = line
	if len(nums) == 2 {
		col, err := strconv.Atoi(nums[1])
		if err != nil || col < 1 {
			return fmt.Errorf("location %q has invalid column %q", text, nums[1])
		}
		res.column = col
	}

	*l = res
	return nil
}
