package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/decker502/viewkit/pkg/embedded"
	"github.com/decker502/viewkit/pkg/widget"
	"gopkg.in/yaml.v3"
)

// DefaultViewCatalogPath 默认视图配置路径（嵌入文件）
const DefaultViewCatalogPath = "data/views.yaml"

// ViewCatalogFile 视图配置文件的顶层结构
type ViewCatalogFile struct {
	Views []ViewConfig `yaml:"views"`
}

// ViewConfig 单个视图的配置
type ViewConfig struct {
	ID           string      `yaml:"id"`
	Name         string      `yaml:"name"`
	Show         PhaseConfig `yaml:"show"`
	Hide         PhaseConfig `yaml:"hide"`
	StartVisible bool        `yaml:"start_visible"`
	Interactable *bool       `yaml:"interactable,omitempty"` // 可选：nil=默认true
}

// PhaseConfig 显示或隐藏阶段的动画配置
type PhaseConfig struct {
	Duration float64 `yaml:"duration"` // 秒，0 表示立即完成
	Easing   string  `yaml:"easing"`   // 缓动名称，空表示 linear
}

// IsInteractable 返回初始可交互标志，未配置时为 true
func (v *ViewConfig) IsInteractable() bool {
	return v.Interactable == nil || *v.Interactable
}

// DisplayName 返回显示名称，未配置时使用 ID
func (v *ViewConfig) DisplayName() string {
	if v.Name != "" {
		return v.Name
	}
	return v.ID
}

// Phase 转换为 widget 的阶段参数
func (p PhaseConfig) Phase() widget.Phase {
	return widget.Phase{
		Duration: p.Duration,
		Easing:   widget.EasingByName(p.Easing),
	}
}

func (p PhaseConfig) validate() error {
	if p.Duration < 0 {
		return fmt.Errorf("duration %.3f 不能为负数", p.Duration)
	}
	if _, err := widget.LookupEasing(p.Easing); err != nil {
		return err
	}
	return nil
}

// ViewCatalog 视图配置目录
// 按 id 索引，并保留声明顺序
type ViewCatalog struct {
	views []ViewConfig
	index map[string]int
}

// LoadViewCatalog 加载视图配置
//
// 嵌入文件系统已初始化时从嵌入文件读取，否则从磁盘读取。
func LoadViewCatalog(path string) (*ViewCatalog, error) {
	var (
		data []byte
		err  error
	)
	if embedded.IsInitialized() && embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("无法读取视图配置 %s: %w", path, err)
	}

	catalog, err := ParseViewCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("视图配置 %s 无效: %w", path, err)
	}
	return catalog, nil
}

// ParseViewCatalog 解析并校验视图配置
func ParseViewCatalog(data []byte) (*ViewCatalog, error) {
	var file ViewCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("无法解析 YAML: %w", err)
	}

	catalog := &ViewCatalog{
		views: file.Views,
		index: make(map[string]int, len(file.Views)),
	}

	var errs []error
	for i := range file.Views {
		v := &file.Views[i]
		if v.ID == "" {
			errs = append(errs, fmt.Errorf("视图 #%d 缺少 'id' 字段", i))
			continue
		}
		if _, dup := catalog.index[v.ID]; dup {
			errs = append(errs, fmt.Errorf("视图 id %q 重复", v.ID))
			continue
		}
		if err := v.Show.validate(); err != nil {
			errs = append(errs, fmt.Errorf("视图 %q show: %w", v.ID, err))
		}
		if err := v.Hide.validate(); err != nil {
			errs = append(errs, fmt.Errorf("视图 %q hide: %w", v.ID, err))
		}
		catalog.index[v.ID] = i
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return catalog, nil
}

// Get 按 id 获取视图配置
func (c *ViewCatalog) Get(id string) (*ViewConfig, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return &c.views[i], true
}

// IDs 按声明顺序返回所有视图 id
func (c *ViewCatalog) IDs() []string {
	ids := make([]string, len(c.views))
	for i := range c.views {
		ids[i] = c.views[i].ID
	}
	return ids
}

// Len 返回视图数量
func (c *ViewCatalog) Len() int {
	return len(c.views)
}
