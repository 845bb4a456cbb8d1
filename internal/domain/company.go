package domain

import "time"

// Company запись реестра компаний-спонсоров.
// Название уникально; тир неизменен после регистрации.
type Company struct {
	ID        int64
	Name      string
	Tier      string
	CreatedAt time.Time
}
