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
	"io"
	"log"
	"os"
	"strings"

	"github.com/cybrota/ranktree/replay"
	"github.com/cybrota/ranktree/tree"
)

// newRanker returns an empty tree of the given variant, wrapped in a query
// cache when the config enables one.
func newRanker(variant string, config *Config) (replay.Ranker, error) {
	var r replay.Ranker
	switch strings.ToLower(variant) {
	case "avl":
		r = tree.NewAVL[int]()
	case "rb", "redblack", "red-black":
		r = tree.NewRB[int]()
	default:
		return nil, fmt.Errorf("unknown tree variant %q (want avl or rb)", variant)
	}
	if config != nil && config.Cache.Enabled {
		r = newQueryCache(r, config.Cache.TTL)
	}
	return r, nil
}

// variants expands "both" into the two tree variants.
func variants(flag string) ([]string, error) {
	switch strings.ToLower(flag) {
	case "both", "all":
		return []string{"avl", "rb"}, nil
	case "avl", "rb":
		return []string{strings.ToLower(flag)}, nil
	}
	return nil, fmt.Errorf("unknown tree variant %q (want avl, rb or both)", flag)
}

// readScript takes the records from ops when given, otherwise from the file
// argument, otherwise from in.
func readScript(ops string, args []string, in io.Reader) ([]replay.Record, error) {
	if ops != "" {
		return replay.ParseString(ops)
	}
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return replay.Parse(f)
	}
	return replay.Parse(in)
}

// runScript replays recs on a fresh tree and writes the answers to w.
func runScript(w io.Writer, variant string, config *Config, recs []replay.Record) error {
	r, err := newRanker(variant, config)
	if err != nil {
		return err
	}
	answers, err := replay.Run(r, recs)
	if len(answers) > 0 {
		fmt.Fprintln(w, replay.FormatAnswers(answers))
	}
	if q, ok := r.(*queryCache); ok {
		log.Printf("Query cache: %d hits, %d misses", q.hits, q.misses)
	}
	return err
}
