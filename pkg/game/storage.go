package game

import (
	"fmt"
	"log"

	"github.com/gonewx/snake/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// StorageAppName gdata 应用名，决定存档目录
const StorageAppName = "coinsnake"

// OpenStorage 打开跨平台存储
//
// 打开失败不是致命错误：返回 nil，设置与最高分退化为仅内存模式
func OpenStorage(appName string) *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[Storage] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[Storage] Warning: gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return manager
}

// loadRecord 读取 YAML 记录到 out
// 存储不可用或记录不存在时返回 false 且不修改 out
func loadRecord(m *gdata.Manager, object, property string, out any) (bool, error) {
	if m == nil || !m.ObjectPropExists(object, property) {
		return false, nil
	}
	data, err := m.LoadObjectProp(object, property)
	if err != nil {
		return false, fmt.Errorf("read %s/%s: %w", object, property, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s/%s: %w", object, property, err)
	}
	return true, nil
}

// saveRecord 以 YAML 写入记录，存储不可用时什么也不做
func saveRecord(m *gdata.Manager, object, property string, v any) error {
	if m == nil {
		return nil
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", object, property, err)
	}
	if err := m.SaveObjectProp(object, property, data); err != nil {
		return fmt.Errorf("write %s/%s: %w", object, property, err)
	}
	return nil
}
