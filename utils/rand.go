package utils

import (
	"math/rand"
	"sync"
	"time"
)

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789")

var (
	rnd   = rand.New(rand.NewSource(time.Now().UnixNano()))
	rndMu sync.Mutex
)

// RandStringRunes returns n random lower-case letters and digits.
func RandStringRunes(n int) string {
	rndMu.Lock()
	defer rndMu.Unlock()

	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rnd.Intn(len(letterRunes))]
	}
	return string(b)
}
