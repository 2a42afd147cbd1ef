package object

import (
	"fmt"
	"math/bits"
	"runtime"
	"runtime/debug"

	"fortio.org/safecast"
)

// Size of the Value interface in bytes.
const ValueSize = 2 * bits.UintSize / 8

// Returns the amount of free memory in bytes under GOMEMLIMIT.
func FreeMemory() int64 {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	limit := debug.SetMemoryLimit(-1)
	heap, err := safecast.Convert[int64](memStats.HeapAlloc)
	if err != nil {
		return -1
	}
	return limit - heap // can be negative.
}

func SizeOk(n int) (bool, int64) {
	if n <= 256 { // no checks for small argument lists.
		return true, 0
	}
	free := FreeMemory()
	return (free >= 0) && (int64(n)*ValueSize < free), free
}

// MakeValueSlice is make([]Value, 0, n) that panics instead of getting the
// process OOM killed when n is unreasonable.
func MakeValueSlice(n int) []Value {
	if ok, _ := SizeOk(n); !ok {
		runtime.GC()
		if ok, free := SizeOk(n); !ok {
			panic(fmt.Sprintf("would exceed memory requesting %d values, %d free", n, free))
		}
	}
	return make([]Value, 0, n)
}
