package memdb

import (
	"errors"
	"sync"
)

// ErrNotFound 目标记录不存在
var ErrNotFound = errors.New("memdb: record not found")

// Row 表行必须能接收表分配的自增ID
type Row interface {
	SetID(id int)
}

// Table 进程内存表：自增主键从1开始，按插入顺序遍历，不支持删除
type Table[T any, PT interface {
	Row
	*T
}] struct {
	mu     sync.RWMutex
	rows   map[int]T
	order  []int
	nextID int
}

func NewTable[T any, PT interface {
	Row
	*T
}]() *Table[T, PT] {
	return &Table[T, PT]{
		rows:   make(map[int]T),
		nextID: 1,
	}
}

// Insert 分配下一个ID并存储，返回带ID的完整记录
func (t *Table[T, PT]) Insert(row T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++

	PT(&row).SetID(id)
	t.rows[id] = row
	t.order = append(t.order, id)
	return row
}

func (t *Table[T, PT]) Get(id int) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

// List 按插入顺序返回满足条件的记录，pred为nil时返回全部
func (t *Table[T, PT]) List(pred func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if pred == nil || pred(row) {
			result = append(result, row)
		}
	}
	return result
}

// Find 按插入顺序返回第一条满足条件的记录
func (t *Table[T, PT]) Find(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, id := range t.order {
		row := t.rows[id]
		if pred(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// Update 在锁内应用mutate后回写，ID不可变；记录不存在时返回ErrNotFound
func (t *Table[T, PT]) Update(id int, mutate func(row *T)) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}

	mutate(&row)
	PT(&row).SetID(id)
	t.rows[id] = row
	return row, nil
}

func (t *Table[T, PT]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
