package ecs

import (
	"reflect"
	"testing"
)

// lifecycleProbe 记录钩子调用的测试组件
type lifecycleProbe struct {
	name string
	log  *[]string
}

func (p *lifecycleProbe) OnActivate()   { *p.log = append(*p.log, p.name+":activate") }
func (p *lifecycleProbe) OnDeactivate() { *p.log = append(*p.log, p.name+":deactivate") }

// otherProbe 与 lifecycleProbe 类型不同，用于测试多组件顺序
type otherProbe struct{ lifecycleProbe }

// layerTag 不实现生命周期的普通组件
type layerTag struct {
	Layer int
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试ID从1开始且唯一
	if id1 != 1 || id2 != 2 {
		t.Errorf("entity IDs = %d, %d, want 1, 2", id1, id2)
	}
	if em.IsEnabled(id1) {
		t.Error("new entity should start disabled")
	}
	if !em.Exists(id1) {
		t.Error("Exists() = false for new entity")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &layerTag{Layer: 3})

	comp, found := em.GetComponent(id, reflect.TypeOf(&layerTag{}))
	if !found {
		t.Fatal("Component should be found")
	}
	if comp.(*layerTag).Layer != 3 {
		t.Errorf("Layer = %d, want 3", comp.(*layerTag).Layer)
	}

	tag, ok := GetComponent[*layerTag](em, id)
	if !ok || tag.Layer != 3 {
		t.Errorf("generic GetComponent = %v, %v", tag, ok)
	}
	if !HasComponent[*layerTag](em, id) {
		t.Error("generic HasComponent = false")
	}
}

func TestAddComponentUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(42, &layerTag{})

	if em.HasComponent(42, reflect.TypeOf(&layerTag{})) {
		t.Error("component added to unknown entity")
	}
}

func TestSetEnabledActivatesInOrder(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	var log []string

	em.AddComponent(id, &lifecycleProbe{name: "a", log: &log})
	em.AddComponent(id, &layerTag{})
	em.AddComponent(id, &otherProbe{lifecycleProbe{name: "b", log: &log}})

	em.SetEnabled(id, true)
	em.SetEnabled(id, false)

	want := []string{"a:activate", "b:activate", "b:deactivate", "a:deactivate"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("hook calls = %v, want %v", log, want)
	}
}

func TestSetEnabledIsIdempotent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	var log []string
	em.AddComponent(id, &lifecycleProbe{name: "a", log: &log})

	em.SetEnabled(id, false) // 已停用
	em.SetEnabled(id, true)
	em.SetEnabled(id, true) // 重复启用
	em.SetEnabled(id, false)
	em.SetEnabled(id, false)

	want := []string{"a:activate", "a:deactivate"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("hook calls = %v, want %v", log, want)
	}
}

func TestAddComponentToEnabledEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	var log []string

	em.SetEnabled(id, true)
	em.AddComponent(id, &lifecycleProbe{name: "a", log: &log})
	// 替换同类型组件：旧的停用，新的激活
	em.AddComponent(id, &lifecycleProbe{name: "a2", log: &log})

	want := []string{"a:activate", "a:deactivate", "a2:activate"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("hook calls = %v, want %v", log, want)
	}
}

func TestRemoveComponentDeactivates(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	var log []string
	em.AddComponent(id, &lifecycleProbe{name: "a", log: &log})
	em.SetEnabled(id, true)

	em.RemoveComponent(id, reflect.TypeOf(&lifecycleProbe{}))
	em.SetEnabled(id, false)

	want := []string{"a:activate", "a:deactivate"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("hook calls = %v, want %v", log, want)
	}
	if HasComponent[*lifecycleProbe](em, id) {
		t.Error("component should be removed")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	var log []string
	em.AddComponent(id, &lifecycleProbe{name: "a", log: &log})
	em.SetEnabled(id, true)

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	// 清理后实体消失，且组件被停用
	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.IsEnabled(id) {
		t.Error("removed entity still enabled")
	}

	want := []string{"a:activate", "a:deactivate"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("hook calls = %v, want %v", log, want)
	}
}

func TestDestroyDisabledEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	var log []string
	em.AddComponent(id, &lifecycleProbe{name: "a", log: &log})

	em.DestroyEntity(id)
	em.DestroyEntity(id) // 重复标记
	em.RemoveMarkedEntities()

	if len(log) != 0 {
		t.Errorf("disabled entity hooks called: %v", log)
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()
	var log []string

	id1 := em.CreateEntity()
	em.AddComponent(id1, &layerTag{})
	em.AddComponent(id1, &lifecycleProbe{log: &log})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &layerTag{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &lifecycleProbe{log: &log})

	both := em.GetEntitiesWith(
		reflect.TypeOf(&layerTag{}),
		reflect.TypeOf(&lifecycleProbe{}),
	)
	if !reflect.DeepEqual(both, []EntityID{id1}) {
		t.Errorf("GetEntitiesWith(both) = %v, want [%d]", both, id1)
	}

	tagged := GetEntitiesWith[*layerTag](em)
	if !reflect.DeepEqual(tagged, []EntityID{id1, id2}) {
		t.Errorf("GetEntitiesWith[*layerTag] = %v, want [%d %d]", tagged, id1, id2)
	}
}
