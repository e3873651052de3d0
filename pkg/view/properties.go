package view

import "github.com/decker502/viewkit/pkg/entity"

// Properties 视图属性
// 目前只有继承自 BaseProperties 的字段；不需要自定义属性的控制器使用它作为默认类型
type Properties struct {
	entity.BaseProperties `yaml:",inline"`
}

// NewProperties 创建指定名称的默认属性
func NewProperties(name string) Properties {
	return Properties{BaseProperties: entity.BaseProperties{Name: name}}
}
