// Command statz runs the same throughput comparison as bench/, outside of
// go test, at larger size-scaled inputs using testing.Benchmark directly,
// and additionally reports the host CPU feature flags
// golang.org/x/sys/cpu detects. Those flags are printed for information
// only; nothing in sponge selects a code path based on them.
package main

import (
	"fmt"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/aead/chacha20/chacha"
	"github.com/dterei/gotsc"
	"github.com/fenrir-labs/draupnir/sponge"
	sha256simd "github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"golang.org/x/sys/cpu"
)

var sizes = [...]int64{64, 512 << 10, 64 << 20, 1 << 30}
var data, calltime = []byte(nil), gotsc.TSCOverhead()

func makeData(size int64) {
	data = make([]byte, size)
	for i := range data {
		data[i] = byte(i)
	}
}

func benchSqueeze(width sponge.Width) func(b *testing.B) {
	s, err := sponge.NewBuilder(width).Build()
	if err != nil {
		panic(err)
	}
	return func(b *testing.B) {
		b.SetBytes(int64(len(data)))
		b.ResetTimer()
		for i := b.N; i > 0; i-- {
			s.Reset().Soak(data)
			for j := 0; j < len(data); j++ {
				s.Squeeze()
			}
		}
	}
}

func benchBlake3(b *testing.B) {
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		_ = blake3.Sum512(data)
	}
}

func benchXXH3(b *testing.B) {
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		_ = xxh3.Hash(data)
	}
}

func benchSHA256SIMD(b *testing.B) {
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		_ = sha256simd.Sum256(data)
	}
}

func benchChaCha20(b *testing.B) {
	var key [32]byte
	var nonce [24]byte
	dst := make([]byte, len(data))
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		chacha.XORKeyStream(dst, data, key[:], nonce[:], 20)
	}
}

type algorithm struct {
	name string
	fn   func(b *testing.B)
}

// runSizes drives fn once per entry in sizes via testing.Benchmark, polling
// the TSC from a background goroutine to sample cycles-per-byte alongside
// the wall-clock throughput, and prints one summary row per algorithm.
func runSizes(a algorithm) {
	fmt.Println(a.name)
	throughputs, speeds, usages := make([]float64, len(sizes)), make([]float64, len(sizes)), make([]float64, len(sizes))

	for i, size := range sizes {
		makeData(size)

		totalHz, polls, mut := uint64(0), uint64(0), &sync.Mutex{}
		stop := make(chan struct{})
		if calltime > 0 {
			go func() {
				for {
					select {
					case <-stop:
						return
					default:
					}
					tsc1 := gotsc.BenchStart()
					time.Sleep(time.Millisecond)
					tsc2 := gotsc.BenchEnd()

					mut.Lock()
					totalHz += tsc2 - tsc1 - calltime
					polls++
					mut.Unlock()

					time.Sleep(time.Millisecond * 9)
				}
			}()
		}

		r := testing.Benchmark(a.fn)
		close(stop)

		mut.Lock()
		throughputs[i] = float64(r.Bytes*int64(r.N)) / r.T.Seconds() /* B/s */
		if polls > 0 {
			speeds[i] = float64(totalHz*1000) / float64(polls) / throughputs[i]
		}
		mut.Unlock()
		throughputs[i] /= 1e6 /* MB/s */
		usages[i] = float64(r.AllocedBytesPerOp())
	}

	fmt.Println("  " + fmtFloats(throughputs...) + "   MB/s")
	if calltime > 0 {
		fmt.Println("  " + fmtFloats(speeds...) + "   cpb")
	}
	fmt.Println("  " + fmtFloats(usages...) + "   B/op")
	fmt.Println()
}

func fmtFloats(f ...float64) string {
	var str, style string
	for _, v := range f {
		switch whole := float64(int64(v)) == v; {
		case v > 1e8 || (v < 1e-6 && !whole):
			style = "%8.3g"
		case v <= 1e1 && !whole:
			style = "%8.6f"
		case v <= 1e2 && !whole:
			style = "%8.5f"
		case v <= 1e3 && !whole:
			style = "%8.4f"
		case v <= 1e4 && !whole:
			style = "%8.3f"
		case v <= 1e5 && !whole:
			style = "%8.2f"
		case v <= 1e6 && !whole:
			style = "%8.1f"
		default:
			style = "%8.f"
		}
		str += "  " + fmt.Sprintf(style, v)
	}
	return str
}

// printCPUFeatures reports the subset of golang.org/x/sys/cpu's detected
// flags relevant to the algorithms compared above. Every field referenced
// here is declared for all platforms and simply reads zero-valued where the
// host architecture doesn't apply, so this needs no build tag.
func printCPUFeatures() {
	fmt.Println("CPU features (informational only, no sponge code path depends on these):")
	fmt.Printf("  x86   SSE2=%-5v AVX=%-5v AVX2=%-5v\n",
		cpu.X86.HasSSE2, cpu.X86.HasAVX, cpu.X86.HasAVX2)
	fmt.Printf("  arm64 AES=%-5v SHA2=%-5v PMULL=%-5v\n",
		cpu.ARM64.HasAES, cpu.ARM64.HasSHA2, cpu.ARM64.HasPMULL)
	fmt.Println()
}

func main() {
	fmt.Printf("Running statz on %d CPUs, %s/%s\n\n", runtime.NumCPU(), runtime.GOOS, runtime.GOARCH)
	printCPUFeatures()

	algs := []algorithm{
		{"draupnir/sponge (width=8)       64B      512K      64M       1G", benchSqueeze(sponge.Width8)},
		{"draupnir/sponge (width=16)      64B      512K      64M       1G", benchSqueeze(sponge.Width16)},
		{"draupnir/sponge (width=32)      64B      512K      64M       1G", benchSqueeze(sponge.Width32)},
		{"draupnir/sponge (width=64)      64B      512K      64M       1G", benchSqueeze(sponge.Width64)},
		{"github.com/zeebo/blake3         64B      512K      64M       1G", benchBlake3},
		{"github.com/zeebo/xxh3           64B      512K      64M       1G", benchXXH3},
		{"github.com/minio/sha256-simd    64B      512K      64M       1G", benchSHA256SIMD},
		{"github.com/aead/chacha20/chacha 64B      512K      64M       1G", benchChaCha20},
	}

	t := time.Now()
	for _, a := range algs {
		runSizes(a)
	}
	fmt.Printf("Finished in %s on %s/%s.\n", time.Since(t).Truncate(time.Millisecond), runtime.GOOS, runtime.GOARCH)
}
