// Package cache keeps geolocation records in a single JSON file on a
// filesystem so repeated lookups of the same address do not go to the
// network again.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/9seconds/whereami/wailib"
	lru "github.com/hashicorp/golang-lru"
	"github.com/juju/errors"
	"github.com/spf13/afero"
)

// DefaultTTL is how long a stored record is considered fresh.
const DefaultTTL = 24 * time.Hour

const (
	fileMode = 0644
	dirMode  = 0755

	memoryEntries = 128
)

type cacheEntry struct {
	Timestamp int64         `json:"timestamp"`
	Info      wailib.Record `json:"info"`
}

// FileStore implements wailib.Store on top of a single JSON document.
//
// The file is a map of ip address to a timestamped record. Reads never
// delete anything, a stale entry is simply ignored until the next Put
// rewrites it. Writes do a whole-file read-modify-write with no file
// locking: the last writer wins, which is fine for a single-user tool.
//
// A small in-process LRU fronts the file. It remembers entries together
// with their file timestamps so the freshness check stays exact, it only
// saves re-reading the same file within one process.
type FileStore struct {
	fs     afero.Afero
	path   string
	ttl    time.Duration
	memory *lru.Cache
	mutex  sync.Mutex
	now    func() time.Time
}

// Path returns a path to the backing file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(ip string) (wailib.Record, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if item, ok := s.memory.Get(ip); ok {
		if entry := item.(cacheEntry); s.fresh(entry) {
			return entry.Info, true
		}

		s.memory.Remove(ip)
	}

	entries, err := s.readFile()
	if err != nil {
		return wailib.Record{}, false
	}

	entry, ok := entries[ip]
	if !ok || !s.fresh(entry) {
		return wailib.Record{}, false
	}

	s.memory.Add(ip, entry)

	return entry.Info, true
}

func (s *FileStore) Put(ip string, record wailib.Record) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entries, err := s.readFile()
	if err != nil {
		entries = map[string]cacheEntry{}
	}

	entry := cacheEntry{
		Timestamp: s.now().Unix(),
		Info:      record,
	}
	entries[ip] = entry

	if err := s.writeFile(entries); err != nil {
		return errors.Annotate(err, "Cannot save cache")
	}

	s.memory.Add(ip, entry)

	return nil
}

func (s *FileStore) fresh(entry cacheEntry) bool {
	return s.now().Unix()-entry.Timestamp <= int64(s.ttl.Seconds())
}

func (s *FileStore) readFile() (map[string]cacheEntry, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, errors.Annotatef(err, "Cannot read cache file %s", s.path)
	}

	entries := map[string]cacheEntry{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Annotatef(err, "Cannot parse cache file %s", s.path)
	}

	return entries, nil
}

func (s *FileStore) writeFile(entries map[string]cacheEntry) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), dirMode); err != nil {
		return errors.Annotatef(err, "Cannot create a directory for %s", s.path)
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return errors.Annotate(err, "Cannot serialize cache")
	}

	if err := s.fs.WriteFile(s.path, data, fileMode); err != nil {
		return errors.Annotatef(err, "Cannot write cache file %s", s.path)
	}

	return nil
}

// DefaultPath returns a conventional per-user location of the cache file.
func DefaultPath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = "."
	}

	return filepath.Join(base, "whereami", "cache.json")
}

// NewFileStore creates a file-backed store. Empty path means DefaultPath,
// non-positive ttl means DefaultTTL.
func NewFileStore(fs afero.Fs, path string, ttl time.Duration) *FileStore {
	if path == "" {
		path = DefaultPath()
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	memory, _ := lru.New(memoryEntries)

	return &FileStore{
		fs:     afero.Afero{Fs: fs},
		path:   path,
		ttl:    ttl,
		memory: memory,
		now:    time.Now,
	}
}
