package graphics

import (
	"crypto/sha256"
	"sort"
	"sync"
	"time"
)

// ImageManager deduplicates images by content hash and evicts the
// least-recently-used ones once usedMemory exceeds maxMemory. It also
// tracks the live Controllers it handed out, so every on-screen graphic
// can be torn down together at shutdown.
type ImageManager struct {
	mu sync.RWMutex

	images   map[uint32]*Image
	hashToID map[[32]byte]uint32
	accessed map[uint32]time.Time
	created  map[uint32]time.Time
	nextID   uint32

	maxMemory  int64
	usedMemory int64

	// controllers tracks every Controller this manager has handed out, so
	// ResetAll can tear every live graphic down together, e.g. on exit.
	controllers []Controller
}

// NewImageManager creates an ImageManager with a 320MB memory budget.
func NewImageManager() *ImageManager {
	return &ImageManager{
		images:    make(map[uint32]*Image),
		hashToID:  make(map[[32]byte]uint32),
		accessed:  make(map[uint32]time.Time),
		created:   make(map[uint32]time.Time),
		maxMemory: 320 * 1024 * 1024,
	}
}

func (m *ImageManager) SetMaxMemory(bytes int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxMemory = bytes
	m.pruneLocked()
}

// Store interns rgba, deduplicating by content hash, and returns the
// canonical Image plus its id. Touches the access time on a repeat store.
func (m *ImageManager) Store(rgba []byte, width, height int) (*Image, uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hash := sha256.Sum256(rgba)
	if id, ok := m.hashToID[hash]; ok {
		m.accessed[id] = time.Now()
		return m.images[id], id
	}

	m.nextID++
	id := m.nextID
	img := &Image{PixelWidth: width, PixelHeight: height, RGBA: rgba, Hash: hash}
	m.images[id] = img
	m.hashToID[hash] = id
	now := time.Now()
	m.created[id] = now
	m.accessed[id] = now
	m.usedMemory += int64(len(rgba))
	m.pruneLocked()
	return img, id
}

// Touch refreshes id's access time, keeping it off the eviction list even
// when no new Store call happened (e.g. a plain scroll redisplays it).
func (m *ImageManager) Touch(id uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.images[id]; ok {
		m.accessed[id] = time.Now()
	}
}

func (m *ImageManager) Image(id uint32) *Image {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.images[id]
}

func (m *ImageManager) UsedMemory() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.usedMemory
}

func (m *ImageManager) pruneLocked() {
	if m.usedMemory <= m.maxMemory {
		return
	}
	type candidate struct {
		id   uint32
		seen time.Time
		size int64
	}
	candidates := make([]candidate, 0, len(m.images))
	for id, img := range m.images {
		candidates = append(candidates, candidate{id, m.accessed[id], int64(len(img.RGBA))})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].seen.Before(candidates[j].seen) })
	for _, c := range candidates {
		if m.usedMemory <= m.maxMemory {
			break
		}
		img := m.images[c.id]
		delete(m.hashToID, img.Hash)
		delete(m.images, c.id)
		delete(m.accessed, c.id)
		delete(m.created, c.id)
		m.usedMemory -= c.size
	}
}

// Track registers a Controller this manager handed out, so ResetAll can
// later emit its delete sequence.
func (m *ImageManager) Track(c Controller) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.controllers = append(m.controllers, c)
}

// ResetAll emits every tracked Controller's Reset sequence and forgets
// them, for use when an application shuts down or clears its screen.
func (m *ImageManager) ResetAll(leaveGraphics bool) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	cmds := make([]string, 0, len(m.controllers))
	for _, c := range m.controllers {
		if cmd := c.Reset(leaveGraphics); cmd != "" {
			cmds = append(cmds, cmd)
		}
	}
	m.controllers = nil
	return cmds
}
