// Package interact_test provides runnable examples for branch
// interaction detection.
package interact_test

import (
	"fmt"

	"github.com/lunarium-dev/ganzhi/cycle"
	"github.com/lunarium-dev/ganzhi/interact"
)

// ExampleDetect demonstrates scanning a branch set against the stock
// interaction tables. Complexity: O(n²) over the entry count.
func ExampleDetect() {
	// 1) Look up the branches in play from the default registry.
	reg := cycle.Default()
	zi, _ := reg.BranchByName("Zi")
	chou, _ := reg.BranchByName("Chou")
	wu, _ := reg.BranchByName("Wu")

	// 2) Label each branch with the position it occupies.
	entries := []interact.Entry{
		{Branch: zi, Label: "year"},
		{Branch: chou, Label: "month"},
		{Branch: wu, Label: "day"},
	}

	// 3) Detect with nil tables to use the defaults.
	records, err := interact.Detect(entries, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) Zi-Chou combine into Earth; Zi-Wu clash; Chou-Wu harm.
	for _, rec := range records {
		fmt.Printf("%s: %v\n", rec.Type, rec.Branches)
	}
	// Output:
	// Six Combination (六合): [year:Zi(Rat) month:Chou(Ox)]
	// Six Clash (六冲): [year:Zi(Rat) day:Wu(Horse)]
	// Six Harm (六害): [month:Chou(Ox) day:Wu(Horse)]
}
