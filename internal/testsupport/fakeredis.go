// Package testsupport holds hand-rolled test doubles for infrastructure
// this module deliberately keeps behind narrow interfaces (Redis, in
// particular) where no test-double library appears anywhere in the
// reference corpus this module was grown from.
package testsupport

import (
	"context"
	"fmt"
	"sort"
	"time"

	"productranking/internal/redisrank"
)

// FakeRedis is a minimal in-memory stand-in for the sorted-set/string
// subset of Redis the ranking pipeline depends on (redisrank.Client). It
// is not a general Redis emulator: only the commands the pipeline actually
// issues are implemented.
type FakeRedis struct {
	sets    map[string]map[string]float64
	strings map[string]string
	ttls    map[string]time.Time
}

// NewFakeRedis returns an empty fake.
func NewFakeRedis() *FakeRedis {
	return &FakeRedis{
		sets:    make(map[string]map[string]float64),
		strings: make(map[string]string),
		ttls:    make(map[string]time.Time),
	}
}

func (f *FakeRedis) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.sets, k)
		delete(f.strings, k)
		delete(f.ttls, k)
	}
	return nil
}

func (f *FakeRedis) ZIncrBy(_ context.Context, key string, increment float64, member string) error {
	set, ok := f.sets[key]
	if !ok {
		set = make(map[string]float64)
		f.sets[key] = set
	}
	set[member] += increment
	return nil
}

func (f *FakeRedis) Rename(_ context.Context, oldKey, newKey string) error {
	set, ok := f.sets[oldKey]
	if !ok {
		return fmt.Errorf("fakeredis: no such key %q", oldKey)
	}
	f.sets[newKey] = set
	delete(f.sets, oldKey)
	delete(f.ttls, newKey)
	return nil
}

func (f *FakeRedis) Expire(_ context.Context, key string, ttl time.Duration) error {
	f.ttls[key] = time.Now().Add(ttl)
	return nil
}

func (f *FakeRedis) Exists(_ context.Context, key string) (bool, error) {
	if _, ok := f.sets[key]; ok {
		return true, nil
	}
	_, ok := f.strings[key]
	return ok, nil
}

func (f *FakeRedis) ZRevRank(_ context.Context, key, member string) (int64, bool, error) {
	ordered, ok := f.orderedMembers(key)
	if !ok {
		return 0, false, nil
	}
	for i, m := range ordered {
		if m == member {
			return int64(i), true, nil
		}
	}
	return 0, false, nil
}

func (f *FakeRedis) ZRevRangeWithScores(_ context.Context, key string, start, stop int64) ([]redisrank.ScoredMember, error) {
	ordered, ok := f.orderedMembers(key)
	if !ok {
		return nil, nil
	}
	if start < 0 {
		start = 0
	}
	if stop >= int64(len(ordered)) {
		stop = int64(len(ordered)) - 1
	}
	if start > stop {
		return nil, nil
	}

	set := f.sets[key]
	out := make([]redisrank.ScoredMember, 0, stop-start+1)
	for _, m := range ordered[start : stop+1] {
		id, err := parseID(m)
		if err != nil {
			return nil, err
		}
		out = append(out, redisrank.ScoredMember{ProductID: id, Score: set[m]})
	}
	return out, nil
}

func (f *FakeRedis) ZCard(_ context.Context, key string) (int64, error) {
	return int64(len(f.sets[key])), nil
}

func (f *FakeRedis) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := f.strings[key]
	return v, ok, nil
}

func (f *FakeRedis) Set(_ context.Context, key, value string, ttl time.Duration) error {
	f.strings[key] = value
	if ttl > 0 {
		f.ttls[key] = time.Now().Add(ttl)
	}
	return nil
}

// HasKey reports whether key currently exists as a sorted set, used by
// tests asserting the staging key was never created.
func (f *FakeRedis) HasKey(key string) bool {
	_, ok := f.sets[key]
	return ok
}

func (f *FakeRedis) orderedMembers(key string) ([]string, bool) {
	set, ok := f.sets[key]
	if !ok {
		return nil, false
	}
	members := make([]string, 0, len(set))
	for m := range set {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool {
		if set[members[i]] != set[members[j]] {
			return set[members[i]] > set[members[j]]
		}
		return members[i] < members[j]
	})
	return members, true
}

func parseID(s string) (int64, error) {
	var id int64
	_, err := fmt.Sscanf(s, "%d", &id)
	return id, err
}
