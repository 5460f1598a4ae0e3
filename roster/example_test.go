package roster_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/footballteam/roster"
	"github.com/katalvlaran/footballteam/team"
)

// ExampleRead solves a roster given in the text input format.
func ExampleRead() {
	players, err := roster.Read(strings.NewReader("5\n1 2 3 4 5\n"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err = roster.Write(os.Stdout, team.SelectMaximalTeam(players)); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// 14
	// 2 3 4 5
}

// ExampleGenerate prints a small reproducible roster.
func ExampleGenerate() {
	players, err := roster.Generate(4, roster.WithSeed(1), roster.WithRange(7, 7))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	_ = roster.Format(os.Stdout, players)
	// Output:
	// 4
	// 7 7 7 7
}
