// Package model defines database models for persistence layer.
package model

import (
	"time"
)

// CollectionModel represents the collections table. Each row holds one whole
// serialized collection.
type CollectionModel struct {
	Key       string    `gorm:"column:collection_key;type:varchar(255);primaryKey"`
	Data      []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CollectionModel.
func (CollectionModel) TableName() string {
	return "collections"
}

// NewCollectionModel creates a row for key holding data.
func NewCollectionModel(key string, data []byte) *CollectionModel {
	return &CollectionModel{
		Key:       key,
		Data:      data,
		UpdatedAt: time.Now().UTC(),
	}
}
