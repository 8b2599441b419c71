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

package replay

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/cockroachdb/errors"
)

// AnswersDir is the subdirectory of a fixture directory holding the
// expected answers, one file per script with the same name.
const AnswersDir = "answers"

// Fixture is a script file paired with its answer file.
type Fixture struct {
	Name       string
	Path       string
	AnswerPath string
}

// Script is a loaded fixture.
type Script struct {
	Records []Record
	Answers []int
	// Raw holds the script bytes as read from disk.
	Raw []byte
}

// Fixtures lists the *.txt scripts directly under dir, sorted by name.
func Fixtures(dir string) ([]Fixture, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}
	if len(paths) == 0 {
		if _, err := os.Stat(dir); err != nil {
			return nil, errors.Wrapf(err, "fixture directory")
		}
	}
	sort.Strings(paths)

	fixtures := make([]Fixture, 0, len(paths))
	for _, p := range paths {
		name := filepath.Base(p)
		fixtures = append(fixtures, Fixture{
			Name:       name,
			Path:       p,
			AnswerPath: filepath.Join(dir, AnswersDir, name),
		})
	}
	return fixtures, nil
}

// Load reads and parses the script and its answers.
func (f Fixture) Load() (*Script, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading fixture %s", f.Name)
	}
	recs, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing fixture %s", f.Name)
	}

	ans, err := os.ReadFile(f.AnswerPath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading answers of %s", f.Name)
	}
	answers, err := ParseAnswers(bytes.NewReader(ans))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing answers of %s", f.Name)
	}
	return &Script{Records: recs, Answers: answers, Raw: raw}, nil
}

// WriteFixture stores recs as dir/name and answers as dir/answers/name.
func WriteFixture(dir, name string, recs []Record, answers []int) (Fixture, error) {
	f := Fixture{
		Name:       name,
		Path:       filepath.Join(dir, name),
		AnswerPath: filepath.Join(dir, AnswersDir, name),
	}
	if err := os.MkdirAll(filepath.Join(dir, AnswersDir), 0755); err != nil {
		return f, errors.Wrapf(err, "creating %s", dir)
	}

	var script, expected bytes.Buffer
	if err := Encode(&script, recs); err != nil {
		return f, err
	}
	if err := EncodeAnswers(&expected, answers); err != nil {
		return f, err
	}
	if err := os.WriteFile(f.Path, script.Bytes(), 0644); err != nil {
		return f, errors.Wrapf(err, "writing %s", f.Path)
	}
	if err := os.WriteFile(f.AnswerPath, expected.Bytes(), 0644); err != nil {
		return f, errors.Wrapf(err, "writing %s", f.AnswerPath)
	}
	return f, nil
}
