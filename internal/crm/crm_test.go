// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crm_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"code.hybscloud.com/fnx/internal/crm"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testClock = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

// newTestEnv returns an Env over a fresh in-memory store with a fixed clock
// and sequential IDs.
func newTestEnv(t *testing.T) (crm.Env, *crm.Store) {
	t.Helper()
	store, err := crm.OpenMemoryStore(context.Background(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	env := crm.NewEnv(store, zap.NewNop(), 4)
	env.Now = func() time.Time { return testClock }
	n := 0
	env.NewID = func() string {
		n++
		return fmt.Sprintf("c-%03d", n)
	}
	return env, store
}

func ada() crm.Contact {
	return crm.Contact{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Phone:   "+441234567890",
		Company: "Analytical Engines",
		Address: crm.Address{Street: "12 St James's Square", Geo: crm.Geo{City: "London", Country: "GB"}},
	}
}

func grace() crm.Contact {
	return crm.Contact{
		Name:    "Grace Hopper",
		Email:   "grace@example.com",
		Address: crm.Address{Geo: crm.Geo{City: "Arlington", Country: "US"}},
	}
}
