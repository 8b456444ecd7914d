package model

import (
	"time"
)

// RegisteredAt 은 생성 시점에 한 번만 기록되고 이후 변경되지 않는다
type BaseEntity struct {
	RegisteredAt time.Time `gorm:"column:registered_at;not null"`
}
