package repository

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type changeKind int

const (
	changeAdd changeKind = iota
	changeUpdate
	changeRemove
)

func (k changeKind) String() string {
	switch k {
	case changeAdd:
		return "add"
	case changeUpdate:
		return "update"
	case changeRemove:
		return "remove"
	default:
		return "unknown"
	}
}

type change struct {
	kind   changeKind
	entity any
}

// DBContext is a unit of work over the categories and tasks tables.
// Add, Update and Remove only stage changes; SaveChanges writes them.
type DBContext struct {
	db *gorm.DB

	mu      sync.Mutex
	pending []change
}

func NewDBContext(db *gorm.DB) *DBContext {
	return &DBContext{db: db}
}

// Add stages entity for insertion. entity must be a pointer to a model.
func (c *DBContext) Add(entity any) {
	c.stage(changeAdd, entity)
}

// Update stages entity to be saved with all of its current fields. The row
// must already exist when SaveChanges runs.
func (c *DBContext) Update(entity any) {
	c.stage(changeUpdate, entity)
}

// Remove stages entity for deletion by primary key.
func (c *DBContext) Remove(entity any) {
	c.stage(changeRemove, entity)
}

// Pending returns the number of staged changes.
func (c *DBContext) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// SaveChanges flushes every staged change in a single transaction, in the
// order they were staged. Staged changes are dropped whether or not the
// transaction commits.
func (c *DBContext) SaveChanges(ctx context.Context) error {
	c.mu.Lock()
	changes := c.pending
	c.pending = nil
	c.mu.Unlock()

	if len(changes) == 0 {
		return nil
	}

	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ch := range changes {
			if err := apply(tx, ch); err != nil {
				return fmt.Errorf("save changes (%s): %w", ch.kind, err)
			}
		}
		return nil
	})
}

// apply writes a single change. An update must match an existing row; it
// never falls back to an insert.
func apply(tx *gorm.DB, ch change) error {
	switch ch.kind {
	case changeAdd:
		return tx.Create(ch.entity).Error
	case changeUpdate:
		res := tx.Model(ch.entity).Select("*").Omit(clause.Associations).Updates(ch.entity)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	case changeRemove:
		return tx.Delete(ch.entity).Error
	default:
		return fmt.Errorf("unknown change kind %d", ch.kind)
	}
}

func (c *DBContext) stage(kind changeKind, entity any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, change{kind: kind, entity: entity})
}
