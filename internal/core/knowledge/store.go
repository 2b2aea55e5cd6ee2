package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"agribot/config"
	"agribot/pkg/logger"
	"agribot/pkg/s3"

	s3_provider "github.com/aws/aws-sdk-go-v2/service/s3"
)

// Passage is one retrievable unit of grounding text, addressed by its topic key.
type Passage struct {
	Key  string
	Text string
}

// Corpus is the immutable set of passages for one language. Key order is the
// file order of first occurrence, which downstream indexing relies on.
type Corpus struct {
	keys  []string
	byKey map[string]Passage
}

// LoadError reports a corpus that could not be read or parsed.
type LoadError struct {
	Locator string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("corpus %q: %v", e.Locator, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads and parses a corpus from a local path or an s3://bucket/key
// locator. Failures of any kind surface as *LoadError.
func Load(ctx context.Context, locator string) (*Corpus, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(locator, "s3://") {
		data, err = readObject(ctx, locator)
	} else {
		data, err = os.ReadFile(locator)
	}
	if err != nil {
		return nil, &LoadError{Locator: locator, Err: err}
	}
	corpus, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Locator: locator, Err: err}
	}
	logger.WithFields(map[string]interface{}{
		"locator":  locator,
		"passages": corpus.Len(),
	}).Info("corpus loaded")
	return corpus, nil
}

// Parse decodes a JSON array of "key: value" entries. Each entry splits on
// its first colon with both sides trimmed. Duplicate keys are resolved
// last-write-wins on the text; the key keeps its first position.
func Parse(data []byte) (*Corpus, error) {
	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	corpus := &Corpus{byKey: make(map[string]Passage, len(entries))}
	for i, entry := range entries {
		key, text, found := strings.Cut(entry, ":")
		if !found {
			return nil, fmt.Errorf("entry %d: missing key/value separator", i)
		}
		key = strings.TrimSpace(key)
		text = strings.TrimSpace(text)
		if key == "" {
			return nil, fmt.Errorf("entry %d: empty topic key", i)
		}
		if _, dup := corpus.byKey[key]; !dup {
			corpus.keys = append(corpus.keys, key)
		}
		corpus.byKey[key] = Passage{Key: key, Text: text}
	}
	return corpus, nil
}

// Len reports the number of distinct passages.
func (c *Corpus) Len() int { return len(c.keys) }

// Keys returns topic keys in stable corpus order.
func (c *Corpus) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Get returns the passage for a topic key.
func (c *Corpus) Get(key string) (Passage, bool) {
	p, ok := c.byKey[key]
	return p, ok
}

// At returns the passage at position i in corpus order.
func (c *Corpus) At(i int) Passage {
	return c.byKey[c.keys[i]]
}

func readObject(ctx context.Context, locator string) ([]byte, error) {
	bucket, key, found := strings.Cut(strings.TrimPrefix(locator, "s3://"), "/")
	if !found || bucket == "" || key == "" {
		return nil, fmt.Errorf("malformed s3 locator")
	}
	cli, err := s3.GetClient()
	if err != nil {
		return nil, err
	}
	out, err := cli.GetObject(ctx, &s3_provider.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		logger.Error(err, "%v: get object failed: %s", config.ModuleS3, locator)
		return nil, err
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}
