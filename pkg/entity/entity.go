// Package entity 提供实体控制器的通用基础能力
//
// 控制器通过组合 Controller[P] 获得一个强类型的属性槽，
// 并实现 Lifecycle 接口以响应宿主的激活/停用。
package entity

import "errors"

// ErrAlreadyConfigured 属性只能配置一次
var ErrAlreadyConfigured = errors.New("entity: properties already configured")

// Properties 实体属性标记接口
// 通过嵌入 BaseProperties 实现
type Properties interface {
	PropertiesName() string
}

// BaseProperties 所有属性类型共享的字段
type BaseProperties struct {
	Name string `yaml:"name"`
}

// PropertiesName 返回属性所属实体的名称
func (p BaseProperties) PropertiesName() string {
	return p.Name
}

// Lifecycle 宿主驱动的激活/停用钩子
//
// 宿主保证 OnActivate 与 OnDeactivate 成对调用，
// 不会在未停用时重复激活。
type Lifecycle interface {
	OnActivate()
	OnDeactivate()
}
