// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"

	"github.com/bitmark-inc/avltree/avl"
)

func Example() {
	tree := avl.New[string, int]()
	tree.Insert("delta", 4)
	tree.Insert("alpha", 1)
	tree.Insert("charlie", 3)
	tree.Insert("bravo", 2)

	if v, ok := tree.Get("charlie"); ok {
		fmt.Println("charlie:", v)
	}
	fmt.Println("floor(c):", tree.Floor("c").Key())
	fmt.Println("ceiling(c):", tree.Ceiling("c").Key())

	// remove every odd value while walking backwards
	for c := tree.ReverseEntries(); c.HasNext(); {
		e, _ := c.Next()
		if 1 == e.Value%2 {
			c.Remove()
		}
	}
	fmt.Println("keys:", tree.KeySlice())

	// Output:
	// charlie: 3
	// floor(c): bravo
	// ceiling(c): charlie
	// keys: [bravo delta]
}
