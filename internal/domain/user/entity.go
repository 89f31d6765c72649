package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Image     string
	Bio       string
	Location  string
	Github    string
	Phone     string
	Needs     []string
	CreatedAt time.Time
}
