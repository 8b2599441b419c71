// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Ranktree %s**

Order-statistics search trees with AVL and Red-Black balancing.
Replay operation scripts, check them against stored answers and generate new ones.

Built with Go %s

# 1. Script format
Whitespace separated records, each an op code followed by an integer:

* **k x** insert x
* **e x** erase one occurrence of x
* **m k** print the k-th smallest key (1-based)
* **n x** print how many keys are less than x

# 2. Commands
* **run** --tree avl|rb [--ops "k 1 m 1"] [file] replays one script and prints the answers
* **check** --tree avl|rb|both dir... replays every dir/*.txt and compares with dir/answers/*.txt
* **generate** --dir out --num 10 --elems 100 --upper 1000 writes random fixtures
* **settings** shows the configuration, creating ~/.ranktree.yaml when missing

# 3. Query cache
Set cache.enabled in the config to memoize m and n answers between mutations.

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
