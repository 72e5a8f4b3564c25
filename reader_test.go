// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/fnx"
)

type config struct {
	Name  string
	Depth int
}

func TestReaderAskAsks(t *testing.T) {
	env := config{Name: "svc", Depth: 2}
	if got := fnx.Ask[config]().Run(env); got != env {
		t.Fatalf("got %+v, want %+v", got, env)
	}
	if got := fnx.Asks(func(c config) string { return c.Name }).Run(env); got != "svc" {
		t.Fatalf("got %q, want svc", got)
	}
	if got := fnx.ReaderOf[config](9).Run(env); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
}

func TestReaderLocalLeavesOriginalUnchanged(t *testing.T) {
	depth := fnx.Asks(func(c config) int { return c.Depth })
	deeper := depth.Local(func(c config) config { c.Depth++; return c })
	env := config{Depth: 1}
	if got := deeper.Run(env); got != 2 {
		t.Fatalf("local: got %d, want 2", got)
	}
	if got := depth.Run(env); got != 1 {
		t.Fatalf("original: got %d, want 1", got)
	}
	if env.Depth != 1 {
		t.Fatalf("env mutated: %+v", env)
	}
}

func TestReaderBindSharesEnvironment(t *testing.T) {
	greet := fnx.BindReader(fnx.Asks(func(c config) string { return c.Name }), func(name string) fnx.Reader[config, string] {
		return fnx.Asks(func(c config) string { return strings.Repeat(name, c.Depth) })
	})
	if got := fnx.MapReader(greet, strings.ToUpper).Run(config{Name: "ab", Depth: 2}); got != "ABAB" {
		t.Fatalf("got %q, want ABAB", got)
	}
}

func TestReaderWithEnv(t *testing.T) {
	name := fnx.Asks(func(s string) int { return len(s) })
	r := fnx.WithEnv(name, func(c config) string { return c.Name })
	if got := r.Run(config{Name: "four"}); got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
}
