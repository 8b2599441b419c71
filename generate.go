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
	"log"
	"math/rand"
	"os"

	"github.com/cybrota/ranktree/replay"
	"github.com/schollz/progressbar/v3"
)

type generateOptions struct {
	Dir   string
	Num   int
	Elems int
	Upper int
	Seed  int64
	// Vary draws elems and upper per fixture from [1, Elems] and
	// [elems, Upper] instead of using them as is.
	Vary     bool
	Progress bool
}

// generateFixtures writes Num random scripts named 1.txt .. Num.txt into
// Dir with their answers under Dir/answers.
func generateFixtures(opts generateOptions) ([]replay.Fixture, error) {
	if opts.Num < 1 {
		return nil, fmt.Errorf("number of fixtures must be positive, got %d", opts.Num)
	}
	if opts.Elems < 1 || opts.Upper < 1 {
		return nil, fmt.Errorf("elems and upper must be positive, got %d and %d", opts.Elems, opts.Upper)
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(opts.Num,
			progressbar.OptionSetDescription("🎲 Generating fixtures..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(os.Stderr, "\n✅ Generation completed!\n")
			}),
		)
	}

	fixtures := make([]replay.Fixture, 0, opts.Num)
	for i := 1; i <= opts.Num; i++ {
		elems, upper := opts.Elems, opts.Upper
		if opts.Vary {
			elems = 1 + rng.Intn(opts.Elems)
			upper = elems + rng.Intn(max(opts.Upper-elems, 0)+1)
		}
		recs, answers := replay.Generate(rng, elems, upper)
		f, err := replay.WriteFixture(opts.Dir, fmt.Sprintf("%d.txt", i), recs, answers)
		if err != nil {
			return fixtures, err
		}
		fixtures = append(fixtures, f)
		advance(bar, 1)
	}
	log.Printf("Wrote %d fixtures to %s", len(fixtures), opts.Dir)
	return fixtures, nil
}
