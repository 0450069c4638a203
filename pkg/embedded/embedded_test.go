package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/config/snake.yaml": &fstest.MapFile{Data: []byte("snake:\n  baseSpeed: 200\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	// 重置状态
	Init(nil)

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	Init(nil)
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	Init(nil)

	_, err := ReadFile("data/config/snake.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	data, err := ReadFile("./data/config/snake.yaml")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Error("Expected file content")
	}
}

func TestReadFileUnknownPrefix(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	if _, err := ReadFile("assets/coin.ogg"); err == nil {
		t.Error("Expected error for path outside data/")
	}
}

func TestExists(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	if !Exists("data/config/snake.yaml") {
		t.Error("Expected bundled config to exist")
	}
	if Exists("data/config/missing.yaml") {
		t.Error("Expected missing file to not exist")
	}
}
