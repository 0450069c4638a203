package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// ScoreRecord 持久化的成绩记录
type ScoreRecord struct {
	BestScore  int `yaml:"bestScore"`
	RunsPlayed int `yaml:"runsPlayed"`
}

// HighScoreManager 最高分管理器
// 每局结束时记录成绩，刷新最高分后立即写入 gdata
type HighScoreManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存）
	record       ScoreRecord
}

const (
	recordsObject   = "records"
	recordsProperty = "best"
)

// NewHighScoreManager 创建最高分管理器并加载已有记录
func NewHighScoreManager(gdataManager *gdata.Manager) *HighScoreManager {
	hm := &HighScoreManager{gdataManager: gdataManager}
	if err := hm.Load(); err != nil {
		log.Printf("[HighScoreManager] Warning: Failed to load records: %v (starting fresh)", err)
	}
	return hm
}

// Load 从 gdata 加载成绩记录
func (hm *HighScoreManager) Load() error {
	hm.record = ScoreRecord{}
	var loaded ScoreRecord
	found, err := loadRecord(hm.gdataManager, recordsObject, recordsProperty, &loaded)
	if err != nil || !found {
		return err
	}
	if loaded.BestScore < 0 {
		loaded.BestScore = 0
	}
	hm.record = loaded
	return nil
}

// Save 保存成绩记录
func (hm *HighScoreManager) Save() error {
	return saveRecord(hm.gdataManager, recordsObject, recordsProperty, &hm.record)
}

// BestScore 返回历史最高分
func (hm *HighScoreManager) BestScore() int {
	return hm.record.BestScore
}

// RunsPlayed 返回已结束的局数
func (hm *HighScoreManager) RunsPlayed() int {
	return hm.record.RunsPlayed
}

// RecordScore 记录一局的最终得分
// 返回是否刷新了最高分
func (hm *HighScoreManager) RecordScore(score int) bool {
	hm.record.RunsPlayed++
	isBest := score > hm.record.BestScore
	if isBest {
		hm.record.BestScore = score
		log.Printf("[HighScoreManager] New best score: %d", score)
	}

	if err := hm.Save(); err != nil {
		log.Printf("[HighScoreManager] Warning: %v", err)
	}
	return isBest
}
