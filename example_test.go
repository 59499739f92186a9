package finito_test

import (
	"fmt"
	"log"

	"github.com/finitolabs/finito"
	"github.com/finitolabs/finito/pkg/dsl"
	"github.com/finitolabs/finito/pkg/simulate"
)

// ExampleEngine builds a small machine that accepts strings over {a,b}
// ending in 'a', then walks the trace for one input step by step.
func ExampleEngine() {
	machine, err := dsl.New().
		State("q0").Initial().On("a", "q1").On("b", "q0").
		State("q1").Final().On("a", "q1").On("b", "q0").
		Build()
	if err != nil {
		log.Fatal(err)
	}

	eng := finito.NewEngine(finito.WithMachine(machine))

	accepted, err := eng.Accept("ba")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("accepted:", accepted)

	trace, err := eng.BuildTrace("ba")
	if err != nil {
		log.Fatal(err)
	}

	cursor := simulate.NewCursor(trace)
	for {
		cfg := cursor.Current()
		fmt.Printf("step %d: %s\n", cfg.Step, cfg.StateID)
		if !cursor.Next() {
			break
		}
	}

	// Output:
	// accepted: true
	// step 0: q0
	// step 1: q0
	// step 2: q1
}

// ExampleEngine_closure enumerates the bounded Kleene closure of {a,b}.
func ExampleEngine_closure() {
	eng := finito.NewEngine()

	strings, err := eng.Closure("ab", 2, true)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(strings), strings)

	// Output:
	// 7 [ a b aa ab ba bb]
}
