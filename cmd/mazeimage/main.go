// This defines a basic executable for generating a maze, optionally solving
// it with one of the step algorithms, and saving the result as a PNG.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"os"

	"github.com/yalue/image_utils"

	"github.com/Anirdq/maze-quest-explorer-ai/grid"
	"github.com/Anirdq/maze-quest-explorer-ai/mazegen"
	"github.com/Anirdq/maze-quest-explorer-ai/render"
	"github.com/Anirdq/maze-quest-explorer-ai/search"
)

const borderPixels = 5

// parseAlgorithm maps the -algorithm flag to a search.Algorithm.
func parseAlgorithm(name string) (search.Algorithm, error) {
	for _, a := range []search.Algorithm{search.BFS, search.DFS, search.AStar, search.Dijkstra} {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", search.ErrUnknownAlgorithm, name)
}

// solve drives the stepper to completion and returns the final maze view.
func solve(alg search.Algorithm, m *grid.MazeData) (*grid.MazeData, error) {
	stepper, err := search.New(alg, m)
	if err != nil {
		return nil, err
	}
	var last *search.Step
	for step := stepper.Next(); step != nil; step = stepper.Next() {
		last = step
	}
	fmt.Printf("%s: visited %d cells, path length %d, success %v (%v)\n",
		alg, last.VisitedCount, last.PathLength, last.Success, last.Elapsed)
	return &grid.MazeData{Grid: last.Grid, Start: m.Start, End: m.End}, nil
}

func run() int {
	var width, height, cellPixels int
	var seed int64
	var algorithm, outFilename string
	var doSolve, asciiOut bool
	flag.IntVar(&width, "width", 21, "The width of the maze, in grid cells.")
	flag.IntVar(&height, "height", 21, "The height of the maze, in grid cells.")
	flag.Int64Var(&seed, "seed", -1, "If positive, specifies the random seed to use.")
	flag.StringVar(&algorithm, "algorithm", "bfs",
		"The search algorithm: bfs, dfs, astar, or dijkstra.")
	flag.BoolVar(&doSolve, "solve", false,
		"If set, runs the selected algorithm to completion before rendering.")
	flag.IntVar(&cellPixels, "cell_pixels", 9, "The size of one cell, in pixels.")
	flag.BoolVar(&asciiOut, "ascii", false, "If set, also prints the maze to stdout.")
	flag.StringVar(&outFilename, "output_file", "",
		"The name of the .png file to which the maze will be saved.")
	flag.Parse()
	if (width < 2) || (height < 2) || (outFilename == "") {
		fmt.Println("Invalid or missing argument.")
		fmt.Println("Run with -help for more information.")
		return 1
	}

	maze, e := mazegen.Generate(width, height, mazegen.WithSeed(seed))
	if e != nil {
		fmt.Printf("Failed generating maze: %s\n", e)
		return 1
	}
	fmt.Printf("Generated %dx%d maze, start %v, end %v.\n", width, height, maze.Start, maze.End)

	view := maze
	if doSolve {
		alg, e := parseAlgorithm(algorithm)
		if e != nil {
			fmt.Printf("Invalid algorithm: %s\n", e)
			return 1
		}
		view, e = solve(alg, maze)
		if e != nil {
			fmt.Printf("Error running %s: %s\n", algorithm, e)
			return 1
		}
	}

	if asciiOut {
		text, e := render.ASCII(view)
		if e != nil {
			fmt.Printf("Error rendering maze text: %s\n", e)
			return 1
		}
		fmt.Print(text)
	}

	pic, e := render.Image(view, cellPixels)
	if e != nil {
		fmt.Printf("Error rendering maze image: %s\n", e)
		return 1
	}
	f, e := os.Create(outFilename)
	if e != nil {
		fmt.Printf("Error creating output file %s: %s\n", outFilename, e)
		return 1
	}
	defer f.Close()
	e = png.Encode(f, image_utils.AddImageBorder(pic, color.White, borderPixels))
	if e != nil {
		fmt.Printf("Error writing image to %s: %s\n", outFilename, e)
		return 1
	}
	fmt.Printf("Image %s written OK.\n", outFilename)
	return 0
}

func main() {
	os.Exit(run())
}
