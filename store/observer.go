package store

// Observer 订阅存储变更的回调接口，回调在变更操作返回前同步执行
type Observer interface {
	// TabsChanged 标签页新增、删除或改名
	TabsChanged()
	// DataChanged 指定标签页的记录发生变化
	DataChanged(tab string)
	// Loaded 启动加载完成，只触发一次
	Loaded(tabs []Tab)
}

// ObserverFuncs 用函数实现 Observer，未设置的回调忽略
type ObserverFuncs struct {
	OnTabsChanged func()
	OnDataChanged func(tab string)
	OnLoaded      func(tabs []Tab)
}

func (f ObserverFuncs) TabsChanged() {
	if f.OnTabsChanged != nil {
		f.OnTabsChanged()
	}
}

func (f ObserverFuncs) DataChanged(tab string) {
	if f.OnDataChanged != nil {
		f.OnDataChanged(tab)
	}
}

func (f ObserverFuncs) Loaded(tabs []Tab) {
	if f.OnLoaded != nil {
		f.OnLoaded(tabs)
	}
}

type subscription struct {
	id  int
	obs Observer
}

// Subscribe 注册观察者，返回取消函数
func (s *Store) Subscribe(o Observer) (unsubscribe func()) {
	s.obsMu.Lock()
	s.nextObsID++
	id := s.nextObsID
	s.observers = append(s.observers, subscription{id: id, obs: o})
	s.obsMu.Unlock()

	return func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) currentObservers() []Observer {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	out := make([]Observer, 0, len(s.observers))
	for _, sub := range s.observers {
		out = append(out, sub.obs)
	}
	return out
}

func (s *Store) emitTabsChanged() {
	for _, o := range s.currentObservers() {
		o.TabsChanged()
	}
}

func (s *Store) emitDataChanged(tab string) {
	for _, o := range s.currentObservers() {
		o.DataChanged(tab)
	}
}

func (s *Store) emitLoaded(tabs []Tab) {
	for _, o := range s.currentObservers() {
		o.Loaded(tabs)
	}
}
