// Package ecs 实体宿主
//
// EntityManager 保存实体及其组件，并负责组件的激活/停用：
// 启用实体时对实现了 entity.Lifecycle 的组件调用 OnActivate，
// 停用或销毁时调用 OnDeactivate。
package ecs

import (
	"log"
	"reflect"

	"github.com/decker502/viewkit/pkg/entity"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 组件添加顺序，激活/停用按此顺序进行
	order map[EntityID][]reflect.Type
	// 已启用的实体
	enabled map[EntityID]bool
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		order:             make(map[EntityID][]reflect.Type),
		enabled:           make(map[EntityID]bool),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
// 新实体处于停用状态
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// Exists 实体是否存在（未被移除）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// AddComponent 为实体添加组件
// 同类型组件会被替换；若实体已启用，旧组件先停用，新组件立即激活
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	compMap, exists := em.components[id]
	if !exists {
		return
	}

	componentType := reflect.TypeOf(component)
	if old, found := compMap[componentType]; found {
		if em.enabled[id] {
			deactivate(old)
		}
	} else {
		em.order[id] = append(em.order[id], componentType)
	}
	compMap[componentType] = component

	if em.enabled[id] {
		activate(component)
	}
}

// RemoveComponent 从实体移除指定类型的组件
// 若实体已启用，组件先停用
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	compMap, exists := em.components[id]
	if !exists {
		return
	}
	comp, found := compMap[componentType]
	if !found {
		return
	}

	if em.enabled[id] {
		deactivate(comp)
	}
	delete(compMap, componentType)

	types := em.order[id]
	for i, t := range types {
		if t == componentType {
			em.order[id] = append(types[:i:i], types[i+1:]...)
			break
		}
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// SetEnabled 启用或停用实体
//
// 只在状态变化时调用组件钩子，重复设置相同状态是空操作，
// 因此组件不会被重复激活。
func (em *EntityManager) SetEnabled(id EntityID, enabled bool) {
	if !em.Exists(id) || em.enabled[id] == enabled {
		return
	}

	if enabled {
		em.enabled[id] = true
		for _, comp := range em.orderedComponents(id) {
			activate(comp)
		}
		return
	}

	delete(em.enabled, id)
	comps := em.orderedComponents(id)
	// 逆序停用
	for i := len(comps) - 1; i >= 0; i-- {
		deactivate(comps[i])
	}
}

// IsEnabled 实体是否已启用
func (em *EntityManager) IsEnabled(id EntityID) bool {
	return em.enabled[id]
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 已启用的实体先停用
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		if !em.Exists(id) {
			continue
		}
		em.SetEnabled(id, false)
		delete(em.components, id)
		delete(em.order, id)
	}
	if len(em.entitiesToDestroy) > 0 {
		log.Printf("[EntityManager] 移除 %d 个实体", len(em.entitiesToDestroy))
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表（按ID升序）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id := EntityID(1); id < EntityID(em.nextID); id++ {
		compMap, exists := em.components[id]
		if !exists {
			continue
		}
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}

func (em *EntityManager) orderedComponents(id EntityID) []interface{} {
	compMap := em.components[id]
	comps := make([]interface{}, 0, len(em.order[id]))
	for _, t := range em.order[id] {
		if comp, ok := compMap[t]; ok {
			comps = append(comps, comp)
		}
	}
	return comps
}

func activate(comp interface{}) {
	if lc, ok := comp.(entity.Lifecycle); ok {
		lc.OnActivate()
	}
}

func deactivate(comp interface{}) {
	if lc, ok := comp.(entity.Lifecycle); ok {
		lc.OnDeactivate()
	}
}
