package model

import "time"

// 用户状态常量定义了用户的几种不同状态
const (
	UserStatusActive   = 1
	UserStatusInactive = 2
	UserStatusBanned   = 3
)

// User 是资产归属的最小用户模型。
// 认证由外部系统负责，这里只保留归属与审计所需的字段。
type User struct {
	ID          uint       `json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	ExternalID  string     `json:"externalID"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
	Status      int        `json:"status"`
}
