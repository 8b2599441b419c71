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
	"strconv"
	"time"

	"github.com/cybrota/ranktree/replay"
	"github.com/patrickmn/go-cache"
)

const (
	// Clean up expired answers every minute
	queryCacheCleanup = time.Minute
)

// queryCache memoizes rank answers between mutations. Any insert or
// successful erase flushes every cached answer.
type queryCache struct {
	replay.Ranker
	c   *cache.Cache
	ttl time.Duration

	hits, misses int
}

func newQueryCache(r replay.Ranker, ttl time.Duration) *queryCache {
	return &queryCache{Ranker: r, c: cache.New(ttl, queryCacheCleanup), ttl: ttl}
}

func (q *queryCache) Insert(key int) {
	q.Ranker.Insert(key)
	q.c.Flush()
}

func (q *queryCache) Erase(key int) bool {
	removed := q.Ranker.Erase(key)
	if removed {
		q.c.Flush()
	}
	return removed
}

// KMin errors are not cached.
func (q *queryCache) KMin(k int) (int, error) {
	key := "m" + strconv.Itoa(k)
	if val, ok := q.c.Get(key); ok {
		q.hits++
		return val.(int), nil
	}
	q.misses++
	v, err := q.Ranker.KMin(k)
	if err != nil {
		return v, err
	}
	q.c.Set(key, v, q.ttl)
	return v, nil
}

func (q *queryCache) LessCount(key int) int {
	ck := "n" + strconv.Itoa(key)
	if val, ok := q.c.Get(ck); ok {
		q.hits++
		return val.(int)
	}
	q.misses++
	v := q.Ranker.LessCount(key)
	q.c.Set(ck, v, q.ttl)
	return v
}
