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
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestFixtures(t *testing.T) {
	dir := t.TempDir()
	scripts := map[string][]Record{
		"b.txt": {{OpInsert, 2}, {OpInsert, 1}, {OpKMin, 2}},
		"a.txt": {{OpInsert, 7}, {OpLessCount, 8}, {OpErase, 7}, {OpLessCount, 8}},
	}
	for name, recs := range scripts {
		if _, err := WriteFixture(dir, name, recs, Expected(recs)); err != nil {
			t.Fatalf("WriteFixture(%s): %v", name, err)
		}
	}
	// Files that are not scripts are ignored.
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("notes"), 0644); err != nil {
		t.Fatal(err)
	}

	fixtures, err := Fixtures(dir)
	if err != nil {
		t.Fatalf("Fixtures returned error: %v", err)
	}
	if len(fixtures) != 2 || fixtures[0].Name != "a.txt" || fixtures[1].Name != "b.txt" {
		t.Fatalf("Fixtures = %+v; want a.txt, b.txt", fixtures)
	}

	wantAnswers := map[string][]int{"a.txt": {1, 0}, "b.txt": {2}}
	for _, f := range fixtures {
		s, err := f.Load()
		if err != nil {
			t.Fatalf("Load(%s): %v", f.Name, err)
		}
		if !slices.Equal(s.Records, scripts[f.Name]) {
			t.Errorf("%s records = %v; want %v", f.Name, s.Records, scripts[f.Name])
		}
		if !slices.Equal(s.Answers, wantAnswers[f.Name]) {
			t.Errorf("%s answers = %v; want %v", f.Name, s.Answers, wantAnswers[f.Name])
		}
		if len(s.Raw) == 0 {
			t.Errorf("%s raw bytes are empty", f.Name)
		}
	}
}

func TestFixturesMissingDir(t *testing.T) {
	if _, err := Fixtures(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Errorf("Fixtures on a missing directory succeeded")
	}
}

func TestLoadWithoutAnswers(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "lone.txt"), []byte("k 1 m 1"), 0644); err != nil {
		t.Fatal(err)
	}
	fixtures, err := Fixtures(dir)
	if err != nil || len(fixtures) != 1 {
		t.Fatalf("Fixtures = %v, %v", fixtures, err)
	}
	if _, err := fixtures[0].Load(); err == nil {
		t.Errorf("Load without an answer file succeeded")
	}
}
