package types

import "github.com/google/uuid"

// EntityID — идентификатор сущности
type EntityID = uuid.UUID
