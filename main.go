package main

import (
	"fmt"

	"github.com/ericr/stalmarck/config"
	"github.com/ericr/stalmarck/solver"
)

func main() {
	printBanner()

	sat := solver.New(config.New())
	sat.AddClause([]int{-1, -3, 5})
	sat.AddClause([]int{-1, -3, -5})
	sat.AddClause([]int{1, 2})

	if sat.Solve() {
		fmt.Println("SAT")

		for _, p := range sat.Answer() {
			fmt.Println(p)
		}
	} else {
		fmt.Println("UNSAT")
	}
}

func printBanner() {
	fmt.Printf("stalmarck %s\n", solver.Version())
	fmt.Println("")
}
