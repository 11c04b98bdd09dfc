package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Reduce  bool
	Combine bool
	Factor  bool
	Expand  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Reduce = boolEnv("SF_DEBUG_REDUCE")
	d.Combine = boolEnv("SF_DEBUG_COMBINE")
	d.Factor = boolEnv("SF_DEBUG_FACTOR")
	d.Expand = boolEnv("SF_DEBUG_EXPAND")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Reduce() bool {
	return d.Reduce
}
func Combine() bool {
	return d.Combine
}
func Factor() bool {
	return d.Factor
}
func Expand() bool {
	return d.Expand
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
