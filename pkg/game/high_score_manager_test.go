package game

import "testing"

func TestRecordScoreInMemory(t *testing.T) {
	hm := NewHighScoreManager(nil)

	if !hm.RecordScore(5) {
		t.Error("Expected first positive score to be a new best")
	}
	if hm.RecordScore(3) {
		t.Error("Expected lower score not to be a new best")
	}
	if hm.RecordScore(5) {
		t.Error("Expected equal score not to be a new best")
	}
	if hm.BestScore() != 5 {
		t.Errorf("Expected best score 5, got %d", hm.BestScore())
	}
	if hm.RunsPlayed() != 3 {
		t.Errorf("Expected 3 runs played, got %d", hm.RunsPlayed())
	}
}

func TestRecordScorePersistence(t *testing.T) {
	manager := createTestGdataManager(t, "records")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	hm := NewHighScoreManager(manager)
	hm.RecordScore(12)

	reloaded := NewHighScoreManager(manager)
	if reloaded.BestScore() != 12 {
		t.Errorf("Expected persisted best score 12, got %d", reloaded.BestScore())
	}
	if reloaded.RunsPlayed() != 1 {
		t.Errorf("Expected 1 run played, got %d", reloaded.RunsPlayed())
	}
}
