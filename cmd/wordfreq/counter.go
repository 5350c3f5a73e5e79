package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/on-the-ground/chainhash/shared/hashtable"
	"github.com/on-the-ground/chainhash/shared/linkedlist"
	"go.uber.org/zap"
)

type wordCount struct {
	Word  string
	Count int
}

// Counter tallies words in a hash table keyed by the hash of each word.
type Counter struct {
	table      *hashtable.HashTable[*wordCount]
	hash       hashtable.HashFunc
	logger     *zap.Logger
	collisions int
}

func NewCounter(initialBuckets int, hash hashtable.HashFunc, logger *zap.Logger) *Counter {
	return &Counter{
		table:  hashtable.New[*wordCount](initialBuckets, hashtable.WithLogger(logger)),
		hash:   hash,
		logger: logger,
	}
}

func (c *Counter) Distinct() int {
	return c.table.NumElements()
}

func (c *Counter) Collisions() int {
	return c.collisions
}

func (c *Counter) Add(word string) {
	key := c.hash([]byte(word))
	if kv, ok := c.table.Find(key); ok {
		if kv.Value.Word != word {
			c.collisions++
			c.logger.Warn("hash collision, word skipped",
				zap.String("word", word),
				zap.String("stored", kv.Value.Word),
				zap.Uint64("key", key),
			)
			return
		}
		kv.Value.Count++
		return
	}
	c.table.Insert(hashtable.KeyValue[*wordCount]{
		Key:   key,
		Value: &wordCount{Word: word, Count: 1},
	})
}

// CountWords adds every word read from r, lower-cased and stripped of
// surrounding punctuation.
func (c *Counter) CountWords(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimFunc(scanner.Text(), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		}))
		if word == "" {
			continue
		}
		c.Add(word)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to scan words: %w", err)
	}
	return nil
}

// Prune drops every word seen fewer than minCount times and reports how many went.
func (c *Counter) Prune(minCount int) int {
	pruned := 0
	it := c.table.Iterator()
	for it.IsValid() {
		kv, _ := it.Get()
		if kv.Value.Count >= minCount {
			it.Next()
			continue
		}
		it.Remove()
		pruned++
	}
	return pruned
}

// Top returns the n most frequent words, most frequent first and
// alphabetical among equals.
func (c *Counter) Top(n int) []wordCount {
	if n <= 0 {
		return nil
	}
	ranked := linkedlist.New[*wordCount]()
	for _, wc := range c.table.All() {
		ranked.Append(wc)
	}
	ranked.Sort(false, compareCounts)

	top := make([]wordCount, 0, min(n, ranked.NumElements()))
	for len(top) < n {
		wc, ok := ranked.Pop()
		if !ok {
			break
		}
		top = append(top, *wc)
	}
	ranked.Free(nil)
	return top
}

// compareCounts orders by count, and by reverse word among equal counts, so
// that a descending sort lists ties alphabetically.
func compareCounts(a, b *wordCount) int {
	if a.Count != b.Count {
		return a.Count - b.Count
	}
	return strings.Compare(b.Word, a.Word)
}

// Close releases the table.
func (c *Counter) Close() {
	c.table.Free(nil)
}
