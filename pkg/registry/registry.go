// Package registry persists published version stamps so build pipelines and
// services can look up what was shipped for a product. Stamps are stored in
// their encoded wire form; every read decodes through the codec, so corrupt
// or foreign blobs surface the codec's errors instead of bad records.
package registry

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/verstamp/verstamp/pkg/codec"
)

// ErrNotFound is returned when a product has no published stamp.
var ErrNotFound = errors.New("product has no published stamp")

// StampEntry is one published stamp in a product's history.
type StampEntry struct {
	ID     ksuid.KSUID
	Record *codec.VersionRecord
}

// seqWidth is the number of hex digits in a history key's sequence number.
const seqWidth = 16

// Registry stores encoded stamps in a pebble database. The latest stamp per
// product lives under latest/<hex(product)>; every publication is also kept
// under stamp/<hex(product)>/<seq><ksuid> for history. The product is
// hex-encoded in keys so a separator byte in a product name cannot leak its
// entries into another product's scan range. <seq> is a 16-digit hex
// sequence number, strictly increasing per registry instance, so history
// keys iterate in publication order regardless of clock resolution; the
// ksuid identifies the publication and keeps keys unique across instances.
type Registry struct {
	db    *pebble.DB
	codec *codec.VersionCodec

	mu      sync.Mutex
	lastSeq uint64
}

// Open opens (creating if necessary) a stamp registry at the given path.
func Open(path string) (*Registry, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	return &Registry{db: db, codec: codec.NewVersionCodec()}, nil
}

// Close closes the underlying database.
func (r *Registry) Close() error {
	return r.db.Close()
}

func latestKey(product string) []byte {
	return []byte("latest/" + hex.EncodeToString([]byte(product)))
}

func historyKey(product string, seq uint64, id ksuid.KSUID) []byte {
	return []byte(fmt.Sprintf("stamp/%s/%016x%s", hex.EncodeToString([]byte(product)), seq, id.String()))
}

func historyBounds(product string) (lower, upper []byte) {
	prefix := "stamp/" + hex.EncodeToString([]byte(product)) + "/"
	return []byte(prefix), append([]byte(prefix), 0xFF)
}

// nextSeq returns a sequence number strictly greater than any previously
// issued by this registry instance. Wall-clock nanoseconds seed it; the
// bump below keeps it monotonic even when the clock reads the same
// nanosecond twice.
func (r *Registry) nextSeq() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	seq := uint64(time.Now().UnixNano())
	if seq <= r.lastSeq {
		seq = r.lastSeq + 1
	}
	r.lastSeq = seq
	return seq
}

// Publish encodes the record and stores it as the product's latest stamp,
// appending it to the product's history. The returned id identifies this
// publication.
func (r *Registry) Publish(rec *codec.VersionRecord) (ksuid.KSUID, error) {
	if rec.Product == "" {
		return ksuid.Nil, errors.New("publish stamp: product is required")
	}

	id := ksuid.New()
	stamp := r.codec.Encode(rec)

	if err := r.db.Set(historyKey(rec.Product, r.nextSeq(), id), stamp, pebble.Sync); err != nil {
		return ksuid.Nil, fmt.Errorf("publish stamp: %w", err)
	}
	if err := r.db.Set(latestKey(rec.Product), stamp, pebble.Sync); err != nil {
		return ksuid.Nil, fmt.Errorf("publish stamp: %w", err)
	}

	return id, nil
}

// Latest returns the product's most recently published stamp, decoded.
func (r *Registry) Latest(product string) (*codec.VersionRecord, error) {
	data, closer, err := r.db.Get(latestKey(product))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, fmt.Errorf("latest stamp for %q: %w", product, ErrNotFound)
		}
		return nil, fmt.Errorf("latest stamp for %q: %w", product, err)
	}
	defer closer.Close()

	rec, err := r.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("latest stamp for %q: %w", product, err)
	}
	return rec, nil
}

// History returns up to limit entries of the product's publication history,
// newest first. A limit <= 0 returns the full history.
func (r *Registry) History(product string, limit int) ([]StampEntry, error) {
	lower, upper := historyBounds(product)
	iter, err := r.db.NewIter(&pebble.IterOptions{LowerBound: lower, UpperBound: upper})
	if err != nil {
		return nil, fmt.Errorf("history for %q: %w", product, err)
	}
	defer iter.Close()

	var entries []StampEntry
	for ok := iter.Last(); ok; ok = iter.Prev() {
		if limit > 0 && len(entries) >= limit {
			break
		}

		suffix := string(iter.Key()[len(lower):])
		if len(suffix) <= seqWidth {
			return nil, fmt.Errorf("history for %q: bad entry key %q", product, iter.Key())
		}
		id, err := ksuid.Parse(suffix[seqWidth:])
		if err != nil {
			return nil, fmt.Errorf("history for %q: bad entry key %q: %w", product, iter.Key(), err)
		}
		rec, err := r.codec.Decode(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("history for %q: %w", product, err)
		}
		entries = append(entries, StampEntry{ID: id, Record: rec})
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("history for %q: %w", product, err)
	}
	return entries, nil
}

// Delete removes a product's latest stamp and its entire history.
func (r *Registry) Delete(product string) error {
	lower, upper := historyBounds(product)
	if err := r.db.DeleteRange(lower, upper, pebble.Sync); err != nil {
		return fmt.Errorf("delete stamps for %q: %w", product, err)
	}
	if err := r.db.Delete(latestKey(product), pebble.Sync); err != nil {
		return fmt.Errorf("delete stamps for %q: %w", product, err)
	}
	return nil
}
