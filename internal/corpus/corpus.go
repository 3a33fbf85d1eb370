// Package corpus provides read-only, memory-mapped access to text files for
// the suffixindex command-line tools. The mapping is never written through;
// it backs an Index via NewBytes without copying the file into the heap.
package corpus

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/zeebo/xxh3"

	sufferrors "github.com/tamirms/suffixindex/errors"
)

// Corpus is a read-only memory-mapped file.
//
// The backing data must be treated as immutable: it is typically handed to
// suffixindex.NewBytes, which retains it for the life of the index. Close
// must only be called after the index built over the data is no longer used.
type Corpus struct {
	path string
	mmap mmap.MMap
	data []byte
}

// Load memory-maps the file at path for sequential read-only access.
// It opens the file, hints sequential read-ahead to the kernel, maps it, and
// closes the file descriptor. Per POSIX mmap(2), the descriptor is not needed
// after the mapping exists.
func Load(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat corpus file: %w", err)
	}
	if stat.Size() == 0 {
		return nil, fmt.Errorf("%w: %s", sufferrors.ErrEmptyCorpus, path)
	}

	// Construction reads the whole text front to back many times over;
	// sequential read-ahead is the right hint. Best-effort.
	fadviseSequential(int(f.Fd()), 0, stat.Size())

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap corpus file: %w", err)
	}

	return &Corpus{
		path: path,
		mmap: mm,
		data: []byte(mm),
	}, nil
}

// Path returns the file path the corpus was loaded from.
func (c *Corpus) Path() string {
	return c.path
}

// Data returns the mapped file contents. The slice is valid until Close and
// must not be modified.
func (c *Corpus) Data() []byte {
	return c.data
}

// Len returns the size of the mapped file in bytes.
func (c *Corpus) Len() int {
	return len(c.data)
}

// Fingerprint returns the xxHash3-64 of the file contents, for reporting
// which input a result was computed from.
func (c *Corpus) Fingerprint() uint64 {
	return xxh3.Hash(c.data)
}

// Close unmaps the file. No method may be called on the Corpus, and no data
// previously returned by Data may be read, after Close returns.
func (c *Corpus) Close() error {
	if c.mmap == nil {
		return nil
	}
	err := c.mmap.Unmap()
	c.mmap = nil
	c.data = nil
	return err
}
