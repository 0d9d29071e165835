package order_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/releaseorder/pkg/order"
)

type change struct {
	Key      string
	Requires []string
}

func ExampleSort() {
	changes := []change{
		{Key: "TOMEE-3", Requires: []string{"TOMEE-2"}},
		{Key: "TOMEE-1"},
		{Key: "TOMEE-2"},
	}

	sorted, err := order.Sort(changes,
		func(c change) string { return c.Key },
		func(c change) []string { return c.Requires },
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range sorted {
		fmt.Println(c.Key)
	}
	// Output:
	// TOMEE-1
	// TOMEE-2
	// TOMEE-3
}

func ExampleCycleError() {
	_, err := order.Strings([]string{"a", "b", "c", "d"}, map[string][]string{
		"a": {"b"},
		"b": {"a", "c"},
		"c": {"b"},
		"d": {"d"},
	})

	var cycles *order.CycleError
	if errors.As(err, &cycles) {
		for _, c := range cycles.Cycles {
			fmt.Println(c)
		}
	}
	// Output:
	// d -> d
	// a -> b -> a
	// b -> c -> b
}
