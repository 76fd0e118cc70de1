package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/lvtrace/backtrack"
	"github.com/katalvlaran/lvtrace/gridgraph"
	"github.com/katalvlaran/lvtrace/scan"
)

var errUsage = errors.New("bad arguments")

// buildOptions carries the knobs shared by both builders.
type buildOptions struct {
	ctx      context.Context
	maxSteps int
}

type problem struct {
	usage string
	build func(args []string, o buildOptions) (view, error)
}

var problems = map[string]problem{
	"combination-sum": {
		usage: "<target> <candidate>...  (all positive)",
		build: func(args []string, o buildOptions) (view, error) {
			nums, err := atoiAll(args, 1)
			if err != nil {
				return nil, err
			}
			// A non-positive weight never exhausts the target.
			for _, n := range nums {
				if n <= 0 {
					return nil, fmt.Errorf("%w: %d is not positive", errUsage, n)
				}
			}

			return searchView(backtrack.CombinationSum(nums[1:], nums[0]), o)
		},
	},
	"letters": {
		usage: "<digits>",
		build: func(args []string, o buildOptions) (view, error) {
			if len(args) != 1 {
				return nil, errUsage
			}

			return searchView(backtrack.LetterCombinations(args[0]), o)
		},
	},
	"palindrome": {
		usage: "<string>",
		build: func(args []string, o buildOptions) (view, error) {
			if len(args) != 1 {
				return nil, errUsage
			}

			return searchView(backtrack.PalindromePartition(args[0]), o)
		},
	},
	"permutations": {
		usage: "<item>...",
		build: func(args []string, o buildOptions) (view, error) {
			nums, err := atoiAll(args, 0)
			if err != nil {
				return nil, err
			}

			return searchView(backtrack.Permutations(nums), o)
		},
	},
	"subsets": {
		usage: "<item>...",
		build: func(args []string, o buildOptions) (view, error) {
			nums, err := atoiAll(args, 0)
			if err != nil {
				return nil, err
			}

			return searchView(backtrack.Subsets(nums), o)
		},
	},
	"min-window": {
		usage: "<source> <pattern>",
		build: func(args []string, o buildOptions) (view, error) {
			if len(args) != 2 {
				return nil, errUsage
			}

			return scanView(scan.MinimumWindow(args[0], args[1]), o)
		},
	},
	"longest-unique": {
		usage: "<string>",
		build: func(args []string, o buildOptions) (view, error) {
			if len(args) != 1 {
				return nil, errUsage
			}

			return scanView(scan.LongestUniqueSubstring(args[0]), o)
		},
	},
	"binary-search": {
		usage: "<target> <sorted value>...",
		build: func(args []string, o buildOptions) (view, error) {
			nums, err := atoiAll(args, 1)
			if err != nil {
				return nil, err
			}

			return scanView(scan.BinarySearch(nums[1:], nums[0]), o)
		},
	},
	"search-insert": {
		usage: "<target> <sorted value>...",
		build: func(args []string, o buildOptions) (view, error) {
			nums, err := atoiAll(args, 1)
			if err != nil {
				return nil, err
			}

			return scanView(scan.SearchInsert(nums[1:], nums[0]), o)
		},
	},
	"grid-paths": {
		usage: "<maze row>...  (# wall, . open, S start, E end)",
		build: func(args []string, o buildOptions) (view, error) {
			g, err := parseGrid(args)
			if err != nil {
				return nil, err
			}

			return searchView(backtrack.GridPaths(g), o)
		},
	},
	"shortest-path": {
		usage: "<maze row>...  (# wall, . open, S start, E end)",
		build: func(args []string, o buildOptions) (view, error) {
			g, err := parseGrid(args)
			if err != nil {
				return nil, err
			}

			return scanView(scan.ShortestPath(g), o)
		},
	},
	"reverse-list": {
		usage: "<value>...",
		build: func(args []string, o buildOptions) (view, error) {
			nums, err := atoiAll(args, 0)
			if err != nil {
				return nil, err
			}

			return scanView(scan.ReverseList(nums), o)
		},
	},
}

// problemNames returns the registered problem names in sorted order.
func problemNames() []string {
	names := make([]string, 0, len(problems))
	for name := range problems {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func searchView[S any](space backtrack.Space[S], o buildOptions) (view, error) {
	opts := []backtrack.Option{backtrack.WithContext(o.ctx)}
	if o.maxSteps > 0 {
		opts = append(opts, backtrack.WithMaxSteps(o.maxSteps))
	}
	tr, err := backtrack.Build(space, opts...)
	if err != nil {
		return nil, err
	}

	return newView(tr), nil
}

func scanView[S any](sc scan.Scanner[S], o buildOptions) (view, error) {
	opts := []scan.Option{scan.WithContext(o.ctx)}
	if o.maxSteps > 0 {
		opts = append(opts, scan.WithMaxSteps(o.maxSteps))
	}
	tr, err := scan.Build(sc, opts...)
	if err != nil {
		return nil, err
	}

	return newView(tr), nil
}

// parseGrid reads maze rows with four-way connectivity.
func parseGrid(rows []string) (*gridgraph.Grid, error) {
	g, err := gridgraph.NewGrid(rows, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	return g, nil
}

// atoiAll parses every argument as an int; at least need are required.
func atoiAll(args []string, need int) ([]int, error) {
	if len(args) < need {
		return nil, errUsage
	}
	nums := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", errUsage, a)
		}
		nums[i] = n
	}

	return nums, nil
}
