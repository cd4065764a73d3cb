package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"assetbook/config"
	"assetbook/models"

	"github.com/sirupsen/logrus"
)

// Store 资产数据存储：标签页 → 资产记录列表，每次修改后整体重写数据文件。
// 所有操作串行执行，写盘完成后才返回。
type Store struct {
	mu     sync.Mutex
	path   string
	tabs   []Tab
	lastID int64
	log    logrus.FieldLogger

	obsMu     sync.Mutex
	observers []subscription
	nextObsID int
}

// Option 创建 Store 时的可选项
type Option func(*Store)

// WithLogger 指定日志
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithObserver 在加载前注册观察者，可收到 Loaded 事件
func WithObserver(o Observer) Option {
	return func(s *Store) {
		s.Subscribe(o)
	}
}

// New 打开数据文件。文件不存在、为空或格式错误时从空数据开始，不返回错误。
func New(path string, opts ...Option) *Store {
	s := &Store{path: path, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("path", path)

	s.mu.Lock()
	s.load()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.emitLoaded(snapshot)
	return s
}

// Path 数据文件路径
func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() {
	s.tabs = nil
	s.lastID = 0

	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.log.Info("데이터 파일이 없어 빈 데이터로 시작합니다")
		return
	case err != nil:
		s.log.WithError(err).Warn("데이터 파일을 읽을 수 없어 빈 데이터로 시작합니다")
		return
	case len(bytes.TrimSpace(data)) == 0:
		s.log.Warn("데이터 파일이 비어 있어 빈 데이터로 시작합니다")
		return
	}

	tabs, warnings, err := decodeDocument(data)
	if err != nil {
		s.log.WithError(err).Warn("데이터 파일이 올바른 JSON 형식이 아니어서 빈 데이터로 시작합니다")
		return
	}
	for _, w := range warnings {
		s.log.Warn(w)
	}
	s.tabs = tabs

	for _, tab := range s.tabs {
		for _, a := range tab.Assets {
			if a.ID > s.lastID {
				s.lastID = a.ID
			}
		}
	}

	// 缺失或重复的 no 在最大值之后重新分配
	seen := make(map[int64]bool)
	repaired := 0
	for ti := range s.tabs {
		for ai := range s.tabs[ti].Assets {
			a := &s.tabs[ti].Assets[ai]
			if a.ID <= 0 || seen[a.ID] {
				s.lastID++
				a.ID = s.lastID
				repaired++
			}
			seen[a.ID] = true
		}
	}
	if repaired > 0 {
		s.log.WithField("count", repaired).Warn("번호가 없거나 중복된 자산에 새 번호를 부여했습니다")
	}

	s.log.WithFields(logrus.Fields{"tabs": len(s.tabs), "last_id": s.lastID}).Info("데이터 파일을 불러왔습니다")
}

// saveLocked 重写整个数据文件，调用方需持有 mu
func (s *Store) saveLocked() error {
	data, err := encodeDocument(s.tabs)
	if err != nil {
		config.LogError(s.log, "store", "saveLocked", len(s.tabs), err)
		return fmt.Errorf("%w: encode document: %v", ErrIO, err)
	}
	if err := WriteFileAtomic(s.path, data, 0o600); err != nil {
		config.LogError(s.log, "store", "saveLocked", s.path, err)
		return fmt.Errorf("%w: write %s: %v", ErrIO, s.path, err)
	}
	return nil
}

func (s *Store) indexOf(name string) int {
	for i, t := range s.tabs {
		if t.Name == name {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() []Tab {
	out := make([]Tab, len(s.tabs))
	for i, t := range s.tabs {
		out[i] = t.clone()
	}
	return out
}

func normalizeTabName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: 탭 이름을 입력해주세요", ErrInvalidInput)
	}
	return name, nil
}

func unknownTab(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownTab, name)
}

// LastID 当前已分配的最大编号
func (s *Store) LastID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastID
}

// GetAllTabNames 按顺序返回所有标签页名称
func (s *Store) GetAllTabNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.tabs))
	for i, t := range s.tabs {
		names[i] = t.Name
	}
	return names
}

// HasTab 标签页是否存在
func (s *Store) HasTab(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(name) >= 0
}

// GetAssetsByTab 返回标签页记录的副本；标签页不存在时返回空列表
func (s *Store) GetAssetsByTab(name string) []models.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(name)
	if i < 0 {
		return []models.Asset{}
	}
	return s.tabs[i].clone().Assets
}

// GetAsset 按编号查找记录
func (s *Store) GetAsset(tab string, id int64) (models.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(tab)
	if i < 0 {
		return models.Asset{}, unknownTab(tab)
	}
	for _, a := range s.tabs[i].Assets {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return models.Asset{}, fmt.Errorf("%w: %d", ErrRecordNotFound, id)
}

// Snapshot 按顺序返回全部数据的副本
func (s *Store) Snapshot() []Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// TotalAmount 标签页金额合计；未知或空标签页为 0，非法金额跳过
func (s *Store) TotalAmount(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(name)
	if i < 0 {
		return 0
	}
	var total int64
	for _, a := range s.tabs[i].Assets {
		v, ok := a.Amount.Int64()
		if !ok {
			s.log.WithFields(logrus.Fields{"tab": name, "id": a.ID, "amount": a.Amount.String()}).
				Warn("유효하지 않은 금액 데이터를 건너뜁니다")
			continue
		}
		total += v
	}
	return total
}

// AddTab 新建空标签页，追加到末尾
func (s *Store) AddTab(name string) error {
	name, err := normalizeTabName(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.indexOf(name) >= 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrDuplicateTab, name)
	}
	s.tabs = append(s.tabs, Tab{Name: name, Assets: []models.Asset{}})
	err = s.saveLocked()
	s.mu.Unlock()

	s.log.WithField("tab", name).Info("탭 추가")
	s.emitTabsChanged()
	return err
}

// DeleteTab 删除标签页及其全部记录。是否允许删除最后一个标签页由调用方决定。
func (s *Store) DeleteTab(name string) error {
	s.mu.Lock()
	i := s.indexOf(name)
	if i < 0 {
		s.mu.Unlock()
		return unknownTab(name)
	}
	s.tabs = append(s.tabs[:i], s.tabs[i+1:]...)
	err := s.saveLocked()
	s.mu.Unlock()

	s.log.WithField("tab", name).Info("탭 삭제")
	s.emitTabsChanged()
	return err
}

// RenameTab 重命名标签页，保持原有顺序；新旧名称相同时不做任何事
func (s *Store) RenameTab(oldName, newName string) error {
	newName, err := normalizeTabName(newName)
	if err != nil {
		return err
	}

	s.mu.Lock()
	i := s.indexOf(oldName)
	if i < 0 {
		s.mu.Unlock()
		return unknownTab(oldName)
	}
	if newName == oldName {
		s.mu.Unlock()
		return nil
	}
	if s.indexOf(newName) >= 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrDuplicateTab, newName)
	}
	s.tabs[i].Name = newName
	err = s.saveLocked()
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"tab": oldName, "new_name": newName}).Info("탭 이름 변경")
	s.emitTabsChanged()
	return err
}

// AddRecord 新增记录并分配编号；空白的到期日不保存
func (s *Store) AddRecord(tab string, in models.AssetInput) (models.Asset, error) {
	s.mu.Lock()
	i := s.indexOf(tab)
	if i < 0 {
		s.mu.Unlock()
		return models.Asset{}, unknownTab(tab)
	}
	a, err := in.Normalize()
	if err != nil {
		s.mu.Unlock()
		return models.Asset{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	s.lastID++
	a.ID = s.lastID
	s.tabs[i].Assets = append(s.tabs[i].Assets, a)
	err = s.saveLocked()
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"tab": tab, "id": a.ID}).Info("자산 추가")
	s.emitDataChanged(tab)
	return a.Clone(), err
}

// UpdateRecord 按编号替换记录内容，编号保持不变
func (s *Store) UpdateRecord(tab string, id int64, in models.AssetInput) (models.Asset, error) {
	s.mu.Lock()
	i := s.indexOf(tab)
	if i < 0 {
		s.mu.Unlock()
		return models.Asset{}, unknownTab(tab)
	}
	pos := -1
	for j, a := range s.tabs[i].Assets {
		if a.ID == id {
			pos = j
			break
		}
	}
	if pos < 0 {
		s.mu.Unlock()
		return models.Asset{}, fmt.Errorf("%w: %d", ErrRecordNotFound, id)
	}
	a, err := in.Normalize()
	if err != nil {
		s.mu.Unlock()
		return models.Asset{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	a.ID = id
	s.tabs[i].Assets[pos] = a
	err = s.saveLocked()
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"tab": tab, "id": id}).Info("자산 수정")
	s.emitDataChanged(tab)
	return a.Clone(), err
}

// DeleteRecords 删除编号在 ids 中的记录，找不到的忽略。
// 没有任何记录被删除时不写盘也不通知。
func (s *Store) DeleteRecords(tab string, ids []int64) (bool, error) {
	s.mu.Lock()
	i := s.indexOf(tab)
	if i < 0 {
		s.mu.Unlock()
		return false, unknownTab(tab)
	}
	drop := make(map[int64]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := make([]models.Asset, 0, len(s.tabs[i].Assets))
	for _, a := range s.tabs[i].Assets {
		if !drop[a.ID] {
			kept = append(kept, a)
		}
	}
	removed := len(s.tabs[i].Assets) - len(kept)
	if removed == 0 {
		s.mu.Unlock()
		return false, nil
	}
	s.tabs[i].Assets = kept
	err := s.saveLocked()
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"tab": tab, "count": removed}).Info("자산 삭제")
	s.emitDataChanged(tab)
	return true, err
}
