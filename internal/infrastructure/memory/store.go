// Package memory implementa los puertos de persistencia en memoria. Se usa con DB_DRIVER=memory
// (desarrollo local) y en las pruebas de los casos de uso.
package memory

import (
	"maps"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
)

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu            sync.RWMutex
	txMu          sync.Mutex
	items         map[int64]entity.Item
	projects      map[int64]entity.Project
	projectItems  map[int64]entity.ProjectItem
	transactions  map[int64]entity.Transaction
	notifications map[int64]entity.Notification
	seq           map[string]int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		items:         make(map[int64]entity.Item),
		projects:      make(map[int64]entity.Project),
		projectItems:  make(map[int64]entity.ProjectItem),
		transactions:  make(map[int64]entity.Transaction),
		notifications: make(map[int64]entity.Notification),
		seq:           make(map[string]int64),
	}
}

// nextID requiere s.mu tomado en escritura.
func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// snapshotItems copia para lecturas consistentes.
func (s *Store) snapshotItems() map[int64]entity.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.items)
}
