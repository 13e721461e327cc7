package gitops

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory Repo. It backs tests and dry runs where no real
// remote exists; commits and pushes are recorded instead of performed. Like a
// real checkout, Commit reports false when the tree matches the last commit,
// so a byte-identical re-render commits nothing.
type MemoryRepo struct {
	mu        sync.Mutex
	files     map[string][]byte
	committed map[string][]byte
	commits   []string
	pushes    int
}

// NewMemoryRepo returns an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		files:     map[string][]byte{},
		committed: map[string][]byte{},
	}
}

// WriteFile stores contents at path.
func (m *MemoryRepo) WriteFile(path string, contents []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(contents))
	copy(stored, contents)
	m.files[path] = stored
	return nil
}

// ReadFile returns the contents stored at path.
func (m *MemoryRepo) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	contents, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("reading %s: file does not exist", path)
	}
	return contents, nil
}

// ListFiles returns the sorted paths under dir. An empty dir lists
// everything.
func (m *MemoryRepo) ListFiles(dir string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var files []string
	for path := range m.files {
		if dir == "" || strings.HasPrefix(path, dir+"/") {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}

// RemoveDir deletes every file under dir.
func (m *MemoryRepo) RemoveDir(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for path := range m.files {
		if path == dir || strings.HasPrefix(path, dir+"/") {
			delete(m.files, path)
		}
	}
	return nil
}

// Commit records the message when the tree differs from the last commit.
func (m *MemoryRepo) Commit(message string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.clean() {
		return false, nil
	}

	m.commits = append(m.commits, message)
	m.committed = make(map[string][]byte, len(m.files))
	for path, contents := range m.files {
		m.committed[path] = contents
	}
	return true, nil
}

// clean reports whether the tree matches the last commit. Callers hold mu.
func (m *MemoryRepo) clean() bool {
	if len(m.files) != len(m.committed) {
		return false
	}
	for path, contents := range m.files {
		if !bytes.Equal(m.committed[path], contents) {
			return false
		}
	}
	return true
}

// Push counts the push.
func (m *MemoryRepo) Push() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pushes++
	return nil
}

// Close is a no-op.
func (m *MemoryRepo) Close() error {
	return nil
}

// Commits returns the recorded commit messages in order.
func (m *MemoryRepo) Commits() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.commits...)
}

// Pushes returns how many times Push was called.
func (m *MemoryRepo) Pushes() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.pushes
}

// Files returns a copy of the stored paths and contents.
func (m *MemoryRepo) Files() map[string][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	files := make(map[string][]byte, len(m.files))
	for path, contents := range m.files {
		files[path] = contents
	}
	return files
}
