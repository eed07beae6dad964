package utils

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Монотонный источник энтропии ULID не потокобезопасен, поэтому под мьютексом.
var (
	idMu    sync.Mutex
	entropy = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

// GenerateID создает уникальный ID экземпляра (ULID, 26 символов).
// ID, созданные подряд, сортируются в порядке создания.
func GenerateID() string {
	idMu.Lock()
	defer idMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
