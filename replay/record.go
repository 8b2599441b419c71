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

// Package replay reads, writes, generates and replays operation scripts
// against order-statistics trees.
//
// A script is a whitespace separated sequence of records, each an op code
// followed by an integer:
//
//	k <key>  insert key
//	m <k>    k-th smallest key (answer)
//	n <key>  number of keys less than key (answer)
//	e <key>  erase one occurrence of key
//
// The answers of a script are the results of its m and n records in order.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-shellwords"
)

// Op is a single-character operation code.
type Op byte

const (
	OpInsert    Op = 'k'
	OpKMin      Op = 'm'
	OpLessCount Op = 'n'
	OpErase     Op = 'e'
)

func (o Op) valid() bool {
	switch o {
	case OpInsert, OpKMin, OpLessCount, OpErase:
		return true
	}
	return false
}

// Answers reports whether the op produces an answer.
func (o Op) Answers() bool {
	return o == OpKMin || o == OpLessCount
}

// Record is one operation of a script.
type Record struct {
	Op  Op
	Arg int
}

func (r Record) String() string {
	return fmt.Sprintf("%c %d", r.Op, r.Arg)
}

// Parse reads a script. Records may be spread over any number of lines.
func Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading script")
	}
	return parseTokens(tokens)
}

// ParseString parses a script given inline, e.g. on the command line.
// Quoting follows shell rules.
func ParseString(s string) ([]Record, error) {
	tokens, err := shellwords.Parse(s)
	if err != nil {
		return nil, errors.Wrapf(err, "splitting %q", s)
	}
	// A quoted group such as "k 1" arrives as one token.
	var fields []string
	for _, tok := range tokens {
		fields = append(fields, strings.Fields(tok)...)
	}
	return parseTokens(fields)
}

func parseTokens(tokens []string) ([]Record, error) {
	if len(tokens)%2 != 0 {
		return nil, errors.Newf("record %d: op %q has no argument", len(tokens)/2, tokens[len(tokens)-1])
	}
	recs := make([]Record, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		op := tokens[i]
		if len(op) != 1 || !Op(op[0]).valid() {
			return nil, errors.Newf("record %d: unknown op %q", i/2, op)
		}
		arg, err := strconv.Atoi(tokens[i+1])
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i/2)
		}
		recs = append(recs, Record{Op: Op(op[0]), Arg: arg})
	}
	return recs, nil
}

// ParseAnswers reads whitespace separated integers.
func ParseAnswers(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var answers []int
	for scanner.Scan() {
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "answer %d", len(answers))
		}
		answers = append(answers, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading answers")
	}
	return answers, nil
}

// Encode writes recs on a single line in the script format.
func Encode(w io.Writer, recs []Record) error {
	parts := make([]string, len(recs))
	for i, r := range recs {
		parts[i] = r.String()
	}
	_, err := io.WriteString(w, strings.Join(parts, " "))
	return err
}

// EncodeAnswers writes answers space separated on a single line.
func EncodeAnswers(w io.Writer, answers []int) error {
	_, err := io.WriteString(w, FormatAnswers(answers))
	return err
}

// FormatAnswers renders answers the way they are stored in answer files.
func FormatAnswers(answers []int) string {
	parts := make([]string, len(answers))
	for i, a := range answers {
		parts[i] = strconv.Itoa(a)
	}
	return strings.Join(parts, " ")
}
