package memory

import (
	"testing"

	"github.com/omarshaarawi/ffwrapped/internal/models"
)

func TestRepository_SettingsEviction(t *testing.T) {
	repo, err := NewRepository(2)
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}

	repo.SaveSettings(&models.LeagueSettings{LeagueID: 1, Season: 2022})
	repo.SaveSettings(&models.LeagueSettings{LeagueID: 1, Season: 2023})

	// Touch 2022 so 2023 becomes the oldest entry.
	if _, ok := repo.GetSettings(LeagueKey{LeagueID: 1, Season: 2022}); !ok {
		t.Fatal("GetSettings(1, 2022) missing")
	}
	repo.SaveSettings(&models.LeagueSettings{LeagueID: 2, Season: 2023})

	if repo.Len() != 2 {
		t.Errorf("Len() = %d, want 2", repo.Len())
	}
	if _, ok := repo.GetSettings(LeagueKey{LeagueID: 1, Season: 2023}); ok {
		t.Error("GetSettings(1, 2023) still cached after eviction")
	}
	if got, ok := repo.GetSettings(LeagueKey{LeagueID: 2, Season: 2023}); !ok || got.LeagueID != 2 {
		t.Errorf("GetSettings(2, 2023) = %v, %v", got, ok)
	}
}

func TestRepository_InvalidSize(t *testing.T) {
	if _, err := NewRepository(0); err == nil {
		t.Error("NewRepository(0) error = nil")
	}
}

func TestRepository_Metadata(t *testing.T) {
	repo, err := NewRepository(1)
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}
	if repo.GetMetadata() != nil {
		t.Error("GetMetadata() on empty repository != nil")
	}
	repo.SaveMetadata(&models.LeagueMetadata{CurrentWeek: 4})
	if got := repo.GetMetadata(); got == nil || got.CurrentWeek != 4 {
		t.Errorf("GetMetadata() = %v", got)
	}
}
