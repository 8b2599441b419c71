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
	"crypto/sha256"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/ranktree/replay"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

// checkResult is the outcome of one fixture on one tree variant.
type checkResult struct {
	Fixture string
	Variant string
	Err     error
}

type checkReport struct {
	Results  []checkResult
	Skipped  []string
	Failed   int
	Duration time.Duration
}

// seenScripts remembers fixtures already replayed, keyed on the script
// bytes together with the stored answers. The bloom filter answers most
// lookups; a digest set confirms its positives.
type seenScripts struct {
	filter  *bloom.BloomFilter
	digests map[[sha256.Size]byte]string
}

func newSeenScripts(size, hashes uint) *seenScripts {
	return &seenScripts{
		filter:  bloom.New(size, hashes),
		digests: make(map[[sha256.Size]byte]string),
	}
}

// add records the fixture under name and returns the name of an earlier
// fixture with the same script and the same answers, if any.
func (s *seenScripts) add(name string, raw []byte, answers []int) (string, bool) {
	h := sha256.New()
	h.Write(raw)
	h.Write([]byte{0})
	h.Write([]byte(replay.FormatAnswers(answers)))
	var sum [sha256.Size]byte
	h.Sum(sum[:0])
	if s.filter.Test(sum[:]) {
		if prev, ok := s.digests[sum]; ok {
			return prev, true
		}
	}
	s.filter.Add(sum[:])
	s.digests[sum] = name
	return "", false
}

// checkDirs replays every fixture under dirs on each variant and compares
// the answers with the stored ones. Fixtures identical in script and answers are replayed once.
func checkDirs(dirs, variantNames []string, config *Config) (*checkReport, error) {
	start := time.Now()
	var fixtures []replay.Fixture
	for _, dir := range dirs {
		fs, err := replay.Fixtures(dir)
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, fs...)
	}

	var bar *progressbar.ProgressBar
	if config.Check.Progress {
		bar = progressbar.NewOptions(len(fixtures)*len(variantNames),
			progressbar.OptionSetDescription("🌳 Replaying fixtures..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(os.Stderr, "\n")
			}),
		)
	}

	report := &checkReport{}
	seen := newSeenScripts(config.Check.BloomSize, config.Check.BloomHashes)
	for _, f := range fixtures {
		name := filepath.Join(filepath.Base(filepath.Dir(f.Path)), f.Name)
		script, err := f.Load()
		if err != nil {
			for _, v := range variantNames {
				report.add(checkResult{Fixture: name, Variant: v, Err: err})
			}
			advance(bar, len(variantNames))
			continue
		}
		if prev, dup := seen.add(name, script.Raw, script.Answers); dup {
			log.Printf("Skipping %s: same script and answers as %s", name, prev)
			report.Skipped = append(report.Skipped, name)
			advance(bar, len(variantNames))
			continue
		}

		for _, v := range variantNames {
			r, err := newRanker(v, config)
			if err != nil {
				return nil, err
			}
			got, err := replay.Run(r, script.Records)
			if err == nil {
				err = replay.Compare(got, script.Answers)
			}
			report.add(checkResult{Fixture: name, Variant: v, Err: err})
			advance(bar, 1)
		}
	}
	report.Duration = time.Since(start)
	return report, nil
}

func advance(bar *progressbar.ProgressBar, n int) {
	if bar != nil {
		bar.Add(n)
	}
}

func (r *checkReport) add(res checkResult) {
	r.Results = append(r.Results, res)
	if res.Err != nil {
		r.Failed++
	}
}

// render draws the summary box for the report.
func (r *checkReport) render(st Styles) string {
	var lines []string
	lines = append(lines, st.Title.Render("Fixture check"))
	for _, res := range r.Results {
		if res.Err != nil {
			lines = append(lines, fmt.Sprintf("%s %s [%s]: %v",
				st.Fail.Render("FAIL"), res.Fixture, res.Variant, res.Err))
		}
	}
	for _, name := range r.Skipped {
		lines = append(lines, st.Muted.Render("skip "+name+" (duplicate)"))
	}

	status := st.Pass.Render(fmt.Sprintf("%d passed", len(r.Results)-r.Failed))
	if r.Failed > 0 {
		status = lipgloss.JoinHorizontal(lipgloss.Top,
			status, st.Muted.Render(", "), st.Fail.Render(fmt.Sprintf("%d failed", r.Failed)))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
		status, st.Muted.Render(fmt.Sprintf(" in %s", r.Duration.Round(time.Millisecond)))))

	return st.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func formatVariants(vs []string) string {
	return strings.ToUpper(strings.Join(vs, ", "))
}
