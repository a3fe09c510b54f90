package memory

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/omarshaarawi/ffwrapped/internal/models"
)

// LeagueKey identifies one league season.
type LeagueKey struct {
	LeagueID int
	Season   int
}

type Repository struct {
	metadata *models.LeagueMetadata
	settings *lru.Cache[LeagueKey, *models.LeagueSettings]
	mu       sync.RWMutex
}

// NewRepository keeps up to size league settings, evicting the least
// recently used.
func NewRepository(size int) (*Repository, error) {
	settings, err := lru.New[LeagueKey, *models.LeagueSettings](size)
	if err != nil {
		return nil, fmt.Errorf("creating league cache: %w", err)
	}
	return &Repository{settings: settings}, nil
}

func (r *Repository) SaveMetadata(metadata *models.LeagueMetadata) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metadata = metadata
}

func (r *Repository) GetMetadata() *models.LeagueMetadata {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.metadata
}

func (r *Repository) SaveSettings(settings *models.LeagueSettings) {
	r.settings.Add(LeagueKey{LeagueID: settings.LeagueID, Season: settings.Season}, settings)
}

func (r *Repository) GetSettings(key LeagueKey) (*models.LeagueSettings, bool) {
	return r.settings.Get(key)
}

// Len is the number of cached league settings.
func (r *Repository) Len() int {
	return r.settings.Len()
}
