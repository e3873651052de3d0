package entity

// Controller 实体控制器基础部分
//
// 持有属性槽（配置一次，之后只读）和基础监听状态。
// 具体控制器组合它，并在自己的 OnActivate/OnDeactivate 中
// 显式调用 AddListeners/RemoveListeners。
type Controller[P Properties] struct {
	properties P
	configured bool
	listening  bool
}

// Configure 设置属性，只能调用一次
func (c *Controller[P]) Configure(props P) error {
	if c.configured {
		return ErrAlreadyConfigured
	}
	c.properties = props
	c.configured = true
	return nil
}

// Properties 返回属性；未配置时为零值
func (c *Controller[P]) Properties() P {
	return c.properties
}

// IsConfigured 是否已配置属性
func (c *Controller[P]) IsConfigured() bool {
	return c.configured
}

// AddListeners 基础监听钩子（激活时调用）
func (c *Controller[P]) AddListeners() {
	c.listening = true
}

// RemoveListeners 基础监听钩子（停用时调用），可重复调用
func (c *Controller[P]) RemoveListeners() {
	c.listening = false
}

// IsListening 基础钩子是否处于监听状态
func (c *Controller[P]) IsListening() bool {
	return c.listening
}
